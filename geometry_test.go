package trilight

import (
	"math"
	"testing"
)

func vecLen(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestBuildCubeMesh(t *testing.T) {
	data := BuildCubeMesh(2.0)

	if len(data.Vertices) != 24 {
		t.Errorf("Expected 24 vertices (4 per face), got %v", len(data.Vertices))
	}
	if len(data.Indices) != 36 {
		t.Errorf("Expected 36 indices (2 triangles per face), got %v", len(data.Indices))
	}

	for i, v := range data.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < -1.0 || v.Position[axis] > 1.0 {
				t.Fatalf("Vertex %d out of bounds: %v", i, v.Position)
			}
		}
		if math.Abs(vecLen(v.Normal)-1.0) > 1e-5 {
			t.Fatalf("Vertex %d normal not unit length: %v", i, v.Normal)
		}
	}

	for _, idx := range data.Indices {
		if int(idx) >= len(data.Vertices) {
			t.Fatalf("Index %d out of range", idx)
		}
	}
}

func TestBuildSphereMesh(t *testing.T) {
	const radius = 1.5
	const segments, rings = 16, 8

	data := BuildSphereMesh(radius, segments, rings)

	wantVerts := (segments + 1) * (rings + 1)
	if len(data.Vertices) != wantVerts {
		t.Errorf("Expected %v vertices, got %v", wantVerts, len(data.Vertices))
	}

	wantIndices := segments * rings * 6
	if len(data.Indices) != wantIndices {
		t.Errorf("Expected %v indices, got %v", wantIndices, len(data.Indices))
	}

	for i, v := range data.Vertices {
		if math.Abs(vecLen(v.Position)-radius) > 1e-4 {
			t.Fatalf("Vertex %d not on sphere surface: %v", i, v.Position)
		}
		if math.Abs(vecLen(v.Normal)-1.0) > 1e-5 {
			t.Fatalf("Vertex %d normal not unit length: %v", i, v.Normal)
		}
	}
}

func TestBuildTorusMesh(t *testing.T) {
	const major, minor = 0.5, 0.2
	const majorSegs, minorSegs = 32, 32

	data := BuildTorusMesh(major, minor, majorSegs, minorSegs)

	wantVerts := (majorSegs + 1) * (minorSegs + 1)
	if len(data.Vertices) != wantVerts {
		t.Errorf("Expected %v vertices, got %v", wantVerts, len(data.Vertices))
	}

	wantIndices := majorSegs * minorSegs * 6
	if len(data.Indices) != wantIndices {
		t.Errorf("Expected %v indices, got %v", wantIndices, len(data.Indices))
	}

	for i, v := range data.Vertices {
		// Every vertex sits at distance minor from the tube's
		// center circle of radius major in the XY plane.
		ringDist := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1]))
		tubeDist := math.Sqrt((ringDist-major)*(ringDist-major) + float64(v.Position[2]*v.Position[2]))
		if math.Abs(tubeDist-minor) > 1e-4 {
			t.Fatalf("Vertex %d not on torus surface: %v (tube distance %v)", i, v.Position, tubeDist)
		}

		if math.Abs(vecLen(v.Normal)-1.0) > 1e-5 {
			t.Fatalf("Vertex %d normal not unit length: %v", i, v.Normal)
		}
	}

	// UVs cover the full parametric range
	first := data.Vertices[0]
	last := data.Vertices[len(data.Vertices)-1]
	if first.UV != [2]float32{0, 0} || last.UV != [2]float32{1, 1} {
		t.Errorf("Expected UVs spanning [0,1]x[0,1], got first %v last %v", first.UV, last.UV)
	}
}

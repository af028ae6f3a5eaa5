package trilight

import (
	"math"
)

// MeshVertex is the interleaved vertex layout every procedural mesh
// produces: position, unit normal, texture coordinates.
type MeshVertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

type MeshData struct {
	Vertices []MeshVertex
	Indices  []uint16
}

// BuildCubeMesh generates an axis-aligned cube centered at the
// origin with per-face normals: 4 vertices and 2 triangles per face.
func BuildCubeMesh(size float32) MeshData {
	h := size * 0.5

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	faceUVs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var data MeshData
	for _, face := range faces {
		base := uint16(len(data.Vertices))
		for i, corner := range face.corners {
			data.Vertices = append(data.Vertices, MeshVertex{
				Position: corner,
				Normal:   face.normal,
				UV:       faceUVs[i],
			})
		}
		data.Indices = append(data.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return data
}

// BuildSphereMesh generates a UV sphere. Normals are the normalized
// positions, which is exact for a sphere centered at the origin.
func BuildSphereMesh(radius float32, segments, rings int) MeshData {
	var data MeshData

	for ring := 0; ring <= rings; ring++ {
		v := float64(ring) / float64(rings)
		theta := v * math.Pi // 0 at the north pole

		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for seg := 0; seg <= segments; seg++ {
			u := float64(seg) / float64(segments)
			phi := u * 2.0 * math.Pi

			nx := float32(sinTheta * math.Cos(phi))
			ny := float32(cosTheta)
			nz := float32(sinTheta * math.Sin(phi))

			data.Vertices = append(data.Vertices, MeshVertex{
				Position: [3]float32{nx * radius, ny * radius, nz * radius},
				Normal:   [3]float32{nx, ny, nz},
				UV:       [2]float32{float32(u), float32(v)},
			})
		}
	}

	stride := uint16(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint16(ring)*stride + uint16(seg)
			b := a + stride

			data.Indices = append(data.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return data
}

// BuildTorusMesh generates a parametric torus. The vertex at
// (theta, phi) is ((R + r*cos phi)*cos theta, (R + r*cos phi)*sin
// theta, r*sin phi); the normal points away from the tube center.
func BuildTorusMesh(majorRadius, minorRadius float32, majorSegs, minorSegs int) MeshData {
	var data MeshData

	for i := 0; i <= majorSegs; i++ {
		u := float64(i) / float64(majorSegs)
		theta := u * 2.0 * math.Pi

		cosTheta := math.Cos(theta)
		sinTheta := math.Sin(theta)

		for j := 0; j <= minorSegs; j++ {
			v := float64(j) / float64(minorSegs)
			phi := v * 2.0 * math.Pi

			cosPhi := math.Cos(phi)
			sinPhi := math.Sin(phi)

			x := (float64(majorRadius) + float64(minorRadius)*cosPhi) * cosTheta
			y := (float64(majorRadius) + float64(minorRadius)*cosPhi) * sinTheta
			z := float64(minorRadius) * sinPhi

			data.Vertices = append(data.Vertices, MeshVertex{
				Position: [3]float32{float32(x), float32(y), float32(z)},
				Normal:   [3]float32{float32(cosTheta * cosPhi), float32(sinTheta * cosPhi), float32(sinPhi)},
				UV:       [2]float32{float32(u), float32(v)},
			})
		}
	}

	stride := uint16(minorSegs + 1)
	for i := 0; i < majorSegs; i++ {
		for j := 0; j < minorSegs; j++ {
			a := uint16(i)*stride + uint16(j)
			b := a + stride

			data.Indices = append(data.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return data
}

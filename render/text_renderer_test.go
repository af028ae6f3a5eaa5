package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicTextRenderer_Atlas(t *testing.T) {
	tr := NewBasicTextRenderer()

	require.NotNil(t, tr.AtlasImage)
	assert.Equal(t, 512, tr.AtlasImage.Bounds().Dx())

	// Printable ASCII must all be present with the bitmap face
	for r := rune(33); r < 127; r++ {
		g, ok := tr.Glyphs[r]
		require.True(t, ok, "missing glyph %q", r)
		assert.Greater(t, g.Adv, float32(0))
		assert.LessOrEqual(t, g.UVMin[0], g.UVMax[0])
		assert.LessOrEqual(t, g.UVMin[1], g.UVMax[1])
	}
}

func TestBuildVertices(t *testing.T) {
	tr := NewBasicTextRenderer()

	items := []TextItem{{
		Text:     "ok",
		Position: [2]float32{0, 0},
		Scale:    1.0,
		Color:    [4]float32{1, 1, 1, 1},
	}}
	verts := tr.BuildVertices(items, 800, 600)
	assert.Len(t, verts, 12, "six vertices per glyph")

	for _, v := range verts {
		assert.GreaterOrEqual(t, v.Pos[0], float32(-1.0))
		assert.LessOrEqual(t, v.Pos[0], float32(1.0))
		assert.Equal(t, [4]float32{1, 1, 1, 1}, v.Color)
	}
}

func TestBuildVertices_Newline(t *testing.T) {
	tr := NewBasicTextRenderer()

	one := tr.BuildVertices([]TextItem{{Text: "a", Scale: 1, Position: [2]float32{0, 0}}}, 800, 600)
	two := tr.BuildVertices([]TextItem{{Text: "a\na", Scale: 1, Position: [2]float32{0, 0}}}, 800, 600)
	require.Len(t, one, 6)
	require.Len(t, two, 12)

	// Second line sits lower on screen (clip space y decreases downward)
	assert.Less(t, two[6].Pos[1], two[0].Pos[1])
	// Both lines start at the same x
	assert.Equal(t, two[0].Pos[0], two[6].Pos[0])
}

func TestMeasureText(t *testing.T) {
	tr := NewBasicTextRenderer()

	w1, h1 := tr.MeasureText("abc", 1.0)
	w2, h2 := tr.MeasureText("abc\nabcdef", 1.0)

	assert.Greater(t, w1, float32(0))
	assert.Greater(t, w2, w1, "longest line wins")
	assert.Equal(t, h1*2, h2, "two lines double the height")

	assert.Equal(t, tr.GetLineHeight(1.0), h1)
	assert.Equal(t, tr.GetLineHeight(2.0), h1*2)
}

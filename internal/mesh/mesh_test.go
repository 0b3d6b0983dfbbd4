package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCube(t *testing.T) {
	m := Cube(1)

	assert.Len(t, m.Verts, 8)
	assert.Len(t, m.Tris, 12)
	assert.Len(t, m.TriUV, 12)
	assert.Len(t, m.Colors, 12)

	for _, v := range m.Verts {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, 1, v[c]*v[c], 1e-15, "corners sit on ±half")
		}
	}
	for _, tri := range m.Tris {
		for _, i := range tri {
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, len(m.Verts))
		}
	}
	for _, uv := range m.TriUV {
		for _, i := range uv {
			assert.Less(t, i, len(m.UVs))
		}
	}
}

func TestAxisGizmo(t *testing.T) {
	m := AxisGizmo(1.5, 0.08)

	// Three boxes of twelve triangles each, untextured.
	assert.Len(t, m.Tris, 36)
	assert.Len(t, m.Colors, 36)
	for _, uv := range m.TriUV {
		assert.Equal(t, [3]int{-1, -1, -1}, uv)
	}

	// The bars reach out to length along their axes.
	maxX := 0.0
	for _, v := range m.Verts {
		if v[0] > maxX {
			maxX = v[0]
		}
	}
	assert.Equal(t, 1.5, maxX)
}

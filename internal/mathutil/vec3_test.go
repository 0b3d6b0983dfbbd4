package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-1, 0.5, 2}

	assert.Equal(t, Vec3{0, 2.5, 5}, a.Add(b))
	assert.Equal(t, Vec3{2, 1.5, 1}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, -1+1+6.0, a.Dot(b))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3{0, 0, -1}, y.Cross(x))

	// Cross of a vector with itself vanishes.
	assert.Equal(t, Vec3{}, x.Cross(x))
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalized()
	assert.InDelta(t, 0.6, v[0], 1e-15)
	assert.InDelta(t, 0.8, v[2], 1e-15)
	assert.InDelta(t, 1, v.Len(), 1e-15)

	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
}

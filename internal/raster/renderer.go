package raster

import (
	"image"

	"orientview/internal/mathutil"
	"orientview/internal/mesh"
)

// Render draws the mesh under orientation q into a square NRGBA image of
// edge size*supersample. The projection is orthographic: vertices are
// rotated by the quaternion's rotation matrix, fitted to the frame by the
// model's bounding radius, and z-buffered. Fitting by radius rather than
// per-pose bounding box keeps the apparent size constant across an
// animation.
func Render(m mesh.Mesh, q mathutil.Quat, size, supersample int, tex *image.NRGBA) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	if len(m.Verts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	R := mathutil.QuatToMat3(q)

	// Rotation preserves length, so the fitting radius can come from the
	// unrotated vertices.
	radius := 0.0
	for _, v := range m.Verts {
		if l := v.Len(); l > radius {
			radius = l
		}
	}
	if radius < 0.001 {
		radius = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / (2 * radius)
	half := float64(renderSize) / 2

	// Project: screen X right, screen Y down, Z toward the viewer.
	px := make([]float64, len(m.Verts))
	py := make([]float64, len(m.Verts))
	pz := make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		tv := R.MulVec3(v)
		px[i] = tv[0]*scale + half
		py[i] = half - tv[1]*scale
		pz[i] = tv[2]
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for ti, tri := range m.Tris {
		uvIdx := [3]int{-1, -1, -1}
		if ti < len(m.TriUV) {
			uvIdx = m.TriUV[ti]
		}
		base := [4]uint8{160, 160, 170, 255}
		if ti < len(m.Colors) {
			base = m.Colors[ti]
		}
		RasterizeTriangle(fb, px, py, pz, m.UVs, tri, uvIdx, tex, base, &lc)
	}

	return fb.ToNRGBA()
}

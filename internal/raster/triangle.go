package raster

import (
	"image"
	"math"
)

// RasterizeTriangle fills one flat-shaded triangle into fb with z-buffer
// testing and optional bilinear texture mapping.
//
// px, py, pz are the projected screen-space vertex coordinates. vi indexes
// them; ti indexes uvs, with a negative index meaning untextured. base is
// the RGBA fallback color used when no texture applies.
//
// This is the hot path; no allocations in the pixel loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	vi, ti [3]int,
	tex *image.NRGBA,
	base [4]uint8,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	hasUV := tex != nil
	for _, i := range ti {
		if i < 0 || i >= len(uvs) {
			hasUV = false
			break
		}
	}
	var u0, v0, u1, v1, u2, v2 float64
	if hasUV {
		u0, v0 = uvs[ti[0]][0], uvs[ti[0]][1]
		u1, v1 = uvs[ti[1]][0], uvs[ti[1]][1]
		u2, v2 = uvs[ti[2]][0], uvs[ti[2]][1]
	}

	// Face normal in screen space for flat shading.
	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return
	}
	shade := lc.Shade([3]float64{nx / nl, ny / nl, nz / nl})

	// Clipped bounding box.
	minX := clampInt(int(math.Min(math.Min(x0, x1), x2)), 0, fb.Width-1)
	maxX := clampInt(int(math.Max(math.Max(x0, x1), x2))+1, 0, fb.Width-1)
	minY := clampInt(int(math.Min(math.Min(y0, y1), y2)), 0, fb.Height-1)
	maxY := clampInt(int(math.Max(math.Max(y0, y1), y2))+1, 0, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12, dx21 := y1-y2, x2-x1
	dy20, dx02 := y2-y0, x0-x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := base[0], base[1], base[2], base[3]
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			}
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// Shade in linear light, then re-encode to sRGB.
			fr := math.Pow(srgbToLinear[cr]*shade, lc.InvGamma)
			fg := math.Pow(srgbToLinear[cg]*shade, lc.InvGamma)
			fbv := math.Pow(srgbToLinear[cb]*shade, lc.InvGamma)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr * 255)
			fb.Color[pxIdx+1] = clamp255(fg * 255)
			fb.Color[pxIdx+2] = clamp255(fbv * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

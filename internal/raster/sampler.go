package raster

import "image"

// SampleTexture performs bilinear filtering with UV wrapping.
// Accesses tex.Pix directly to keep the triangle inner loop allocation-free.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs into [0, 1)
	u -= float64(int(u))
	if u < 0 {
		u++
	}
	v -= float64(int(v))
	if v < 0 {
		v++
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	i00 := y0*tex.Stride + x0*4
	i10 := y0*tex.Stride + x1*4
	i01 := y1*tex.Stride + x0*4
	i11 := y1*tex.Stride + x1*4
	pix := tex.Pix

	blend := func(c int) uint8 {
		top := float64(pix[i00+c])*(1-dx) + float64(pix[i10+c])*dx
		bot := float64(pix[i01+c])*(1-dx) + float64(pix[i11+c])*dx
		return uint8(top*(1-dy) + bot*dy + 0.5)
	}
	return blend(0), blend(1), blend(2), blend(3)
}

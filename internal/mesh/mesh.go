package mesh

import "orientview/internal/mathutil"

// Mesh is triangle geometry in model space. UVs are indexed per corner
// through TriUV; Colors holds one flat base color per triangle, used when
// rendering without a texture.
type Mesh struct {
	Verts  []mathutil.Vec3
	Tris   [][3]int
	UVs    [][2]float64
	TriUV  [][3]int
	Colors [][4]uint8
}

// quadUV is the shared UV table for box faces: one full texture per face.
var quadUV = [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// faceColors are the per-face base colors of Cube, +X -X +Y -Y +Z -Z.
var faceColors = [6][4]uint8{
	{214, 96, 84, 255},
	{138, 58, 50, 255},
	{96, 200, 110, 255},
	{54, 118, 64, 255},
	{92, 128, 222, 255},
	{50, 72, 134, 255},
}

// Cube returns an axis-aligned cube of half-extent half centered on the
// origin, 12 triangles with per-face UVs and colors.
func Cube(half float64) Mesh {
	h := half
	m := Mesh{
		Verts: []mathutil.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		UVs: quadUV,
	}

	// Corner indices per face, counter-clockwise seen from outside.
	faces := [6][4]int{
		{1, 5, 6, 2}, // +X
		{4, 0, 3, 7}, // -X
		{3, 2, 6, 7}, // +Y
		{4, 5, 1, 0}, // -Y
		{5, 4, 7, 6}, // +Z
		{0, 1, 2, 3}, // -Z
	}
	for fi, f := range faces {
		m.addQuad(f, faceColors[fi])
	}
	return m
}

// AxisGizmo returns three thin bars of the given length along +X, +Y and
// +Z, colored red, green and blue. Useful for eyeballing an orientation.
func AxisGizmo(length, thickness float64) Mesh {
	var m Mesh
	t := thickness
	m.addBox(mathutil.Vec3{0, -t, -t}, mathutil.Vec3{length, t, t}, [4]uint8{220, 60, 60, 255})
	m.addBox(mathutil.Vec3{-t, 0, -t}, mathutil.Vec3{t, length, t}, [4]uint8{60, 200, 80, 255})
	m.addBox(mathutil.Vec3{-t, -t, 0}, mathutil.Vec3{t, t, length}, [4]uint8{70, 110, 230, 255})
	return m
}

// addQuad appends a quad over existing vertices as two triangles sharing
// the face color and the standard quad UVs.
func (m *Mesh) addQuad(corners [4]int, color [4]uint8) {
	m.Tris = append(m.Tris,
		[3]int{corners[0], corners[1], corners[2]},
		[3]int{corners[0], corners[2], corners[3]})
	m.TriUV = append(m.TriUV, [3]int{0, 1, 2}, [3]int{0, 2, 3})
	m.Colors = append(m.Colors, color, color)
}

// addBox appends an axis-aligned box spanning min..max with a single
// color and no UVs.
func (m *Mesh) addBox(min, max mathutil.Vec3, color [4]uint8) {
	base := len(m.Verts)
	m.Verts = append(m.Verts,
		mathutil.Vec3{min[0], min[1], min[2]},
		mathutil.Vec3{max[0], min[1], min[2]},
		mathutil.Vec3{max[0], max[1], min[2]},
		mathutil.Vec3{min[0], max[1], min[2]},
		mathutil.Vec3{min[0], min[1], max[2]},
		mathutil.Vec3{max[0], min[1], max[2]},
		mathutil.Vec3{max[0], max[1], max[2]},
		mathutil.Vec3{min[0], max[1], max[2]},
	)
	faces := [6][4]int{
		{1, 5, 6, 2},
		{4, 0, 3, 7},
		{3, 2, 6, 7},
		{4, 5, 1, 0},
		{5, 4, 7, 6},
		{0, 1, 2, 3},
	}
	for _, f := range faces {
		m.Tris = append(m.Tris,
			[3]int{base + f[0], base + f[1], base + f[2]},
			[3]int{base + f[0], base + f[2], base + f[3]})
		m.TriUV = append(m.TriUV, [3]int{-1, -1, -1}, [3]int{-1, -1, -1})
		m.Colors = append(m.Colors, color, color)
	}
}

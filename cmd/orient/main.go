package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"orientview/internal/mathutil"
)

// orient prints every representation of a single orientation given as
// Euler angles, axis-angle, or a look direction.
func main() {
	euler := flag.String("euler", "", "Euler angles \"pitch,yaw,roll\" in degrees")
	axis := flag.String("axis", "", "Rotation axis \"x,y,z\" (used with -angle)")
	angle := flag.Float64("angle", 0, "Rotation angle in degrees (used with -axis)")
	dir := flag.String("dir", "", "Forward direction \"x,y,z\"")
	up := flag.String("up", "0,1,0", "Up direction for -dir")

	flag.Parse()

	var q mathutil.Quat
	switch {
	case *euler != "":
		p, err := parseN(*euler, 3)
		if err != nil {
			fail("bad -euler: %v", err)
		}
		q = mathutil.QuatFromEuler(p[0], p[1], p[2])
	case *axis != "":
		a, err := parseN(*axis, 3)
		if err != nil {
			fail("bad -axis: %v", err)
		}
		q = mathutil.QuatFromAxisAngle(mathutil.Vec3{a[0], a[1], a[2]}, *angle)
	case *dir != "":
		d, err := parseN(*dir, 3)
		if err != nil {
			fail("bad -dir: %v", err)
		}
		u, err := parseN(*up, 3)
		if err != nil {
			fail("bad -up: %v", err)
		}
		q = mathutil.QuatFromDirection(mathutil.Vec3{d[0], d[1], d[2]}, mathutil.Vec3{u[0], u[1], u[2]})
	default:
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("quaternion: (w=%.6f, x=%.6f, y=%.6f, z=%.6f)  length=%.6f\n",
		q.Scalar(), q[0], q[1], q[2], q.Len())

	ax, ang := q.AxisAngle()
	fmt.Printf("axis-angle: axis=(%.6f, %.6f, %.6f)  angle=%.4f°\n", ax[0], ax[1], ax[2], ang)

	pitch, yaw, roll := q.EulerAngles()
	fmt.Printf("euler:      pitch=%.4f°  yaw=%.4f°  roll=%.4f°\n", pitch, yaw, roll)

	m := mathutil.QuatToMat3(q)
	fmt.Println("matrix:")
	for r := 0; r < 3; r++ {
		fmt.Printf("  [%9.6f %9.6f %9.6f]\n", m[r*3], m[r*3+1], m[r*3+2])
	}

	xa, ya, za := q.Axes()
	fmt.Printf("axes:       x=(%.4f, %.4f, %.4f)  y=(%.4f, %.4f, %.4f)  z=(%.4f, %.4f, %.4f)\n",
		xa[0], xa[1], xa[2], ya[0], ya[1], ya[2], za[0], za[1], za[2])
}

// parseN splits a comma-separated list into exactly n floats.
func parseN(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

package mathutil

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Quat is a quaternion stored as (x, y, z, w): vector part first, scalar
// part last. The zero value is the null quaternion, which represents no
// rotation at all; use QuatIdentity for the identity rotation.
//
// Arithmetic never normalizes implicitly. Operations documented for unit
// quaternions (Rotate, QuatToMat3) carry |q|² scale when fed a non-unit
// value; call Normalized first when unit length is required.
type Quat [4]float64

// Trig-domain epsilons. These are intentionally distinct from the shared
// fuzzy tolerance in fuzzy.go: each one bounds a specific division or
// inverse-trig call away from its singular region.
const (
	// gimbalEpsilon bounds |sin(pitch)| away from 1 in Euler extraction,
	// where yaw and roll hide a division by cos(pitch).
	gimbalEpsilon = 1e-5
	// slerpEpsilon is the smallest angular separation the sine-based
	// slerp weights can resolve; below it the weights degrade to a
	// linear blend.
	slerpEpsilon = 1e-7
	// traceEpsilon selects the direct branch of matrix-to-quaternion
	// extraction, keeping the divisor sqrt(trace+1) well away from zero.
	traceEpsilon = 1e-8
)

// QuatIdentity returns the identity quaternion (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// IsNull reports whether all four components are exactly zero.
func (q Quat) IsNull() bool {
	return q[0] == 0 && q[1] == 0 && q[2] == 0 && q[3] == 0
}

// IsIdentity reports whether the vector part is exactly zero and the
// scalar part exactly one.
func (q Quat) IsIdentity() bool {
	return q[0] == 0 && q[1] == 0 && q[2] == 0 && q[3] == 1
}

// Vector returns the vector part (x, y, z).
func (q Quat) Vector() Vec3 {
	return Vec3{q[0], q[1], q[2]}
}

// Scalar returns the scalar part w.
func (q Quat) Scalar() float64 {
	return q[3]
}

// Len returns the Euclidean norm of all four components. Chained hypot
// keeps the result exact for magnitudes where squaring would overflow or
// underflow.
func (q Quat) Len() float64 {
	return math.Hypot(math.Hypot(q[0], q[1]), math.Hypot(q[2], q[3]))
}

// LenSquared returns the naive sum of squares. Cheaper than Len but
// susceptible to overflow and underflow at extreme magnitudes.
func (q Quat) LenSquared() float64 {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

// Dot returns the four-component dot product of a and b.
func (a Quat) Dot(b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (a Quat) Add(b Quat) Quat {
	return Quat{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Quat) Sub(b Quat) Quat {
	return Quat{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (q Quat) Scale(s float64) Quat {
	return Quat{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}

func (q Quat) Neg() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

// Mul returns the Hamilton product a × b. The product is non-commutative:
// as rotations, a.Mul(b) applies b first, then a. This matches Rotate:
// a.Mul(b).Rotate(v) == a.Rotate(b.Rotate(v)) for unit quaternions.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		a[3]*b[0] + a[0]*b[3] + a[1]*b[2] - a[2]*b[1],
		a[3]*b[1] - a[0]*b[2] + a[1]*b[3] + a[2]*b[0],
		a[3]*b[2] + a[0]*b[1] - a[1]*b[0] + a[2]*b[3],
		a[3]*b[3] - a[0]*b[0] - a[1]*b[1] - a[2]*b[2],
	}
}

// Normalized returns the unit form of q. A quaternion whose length is
// already fuzzily 1 is returned unchanged; a fuzzily-null quaternion
// yields the exact null quaternion.
func (q Quat) Normalized() Quat {
	scale := q.Len()
	if FuzzyEqual(scale, 1) {
		return q
	}
	if FuzzyIsNull(scale) {
		return Quat{}
	}
	return q.Scale(1 / scale)
}

// Normalize scales q to unit length in place. A no-op for a null
// quaternion or one already fuzzily unit length.
func (q *Quat) Normalize() {
	l := q.Len()
	if FuzzyEqual(l, 1) || FuzzyIsNull(l) {
		return
	}
	q[0] /= l
	q[1] /= l
	q[2] /= l
	q[3] /= l
}

// Conjugated returns the conjugate (-x, -y, -z, w).
func (q Quat) Conjugated() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// Inverted returns the multiplicative inverse: the conjugate divided by
// the squared length. A null quaternion inverts to null.
func (q Quat) Inverted() Quat {
	l := q.LenSquared()
	if FuzzyIsNull(l) {
		return Quat{}
	}
	return Quat{-q[0] / l, -q[1] / l, -q[2] / l, q[3] / l}
}

// Rotate returns the vector part of q × (0, v) × conj(q). A pure rotation
// only when q is unit length; otherwise the result is scaled by |q|².
func (q Quat) Rotate(v Vec3) Vec3 {
	r := q.Mul(Quat{v[0], v[1], v[2], 0}).Mul(q.Conjugated())
	return r.Vector()
}

// QuatFromAxisAngle returns the normalized quaternion for a rotation of
// angleDeg degrees about axis. The axis need not be unit length; a
// zero-length axis yields a degenerate axis-free result.
func QuatFromAxisAngle(axis Vec3, angleDeg float64) Quat {
	x, y, z := axis[0], axis[1], axis[2]
	l := math.Hypot(math.Hypot(x, y), z)
	if !FuzzyEqual(l, 1) && !FuzzyIsNull(l) {
		x /= l
		y /= l
		z /= l
	}
	s, c := math.Sincos(Deg2Rad(angleDeg) / 2)
	return Quat{x * s, y * s, z * s, c}.Normalized()
}

// AxisAngle extracts the rotation axis (unit length) and angle in degrees
// from q. When the vector part is fuzzily null the rotation angle is 0
// mod 360° and any axis fits, so the zero vector and 0° are returned.
func (q Quat) AxisAngle() (axis Vec3, angleDeg float64) {
	l := math.Hypot(math.Hypot(q[0], q[1]), q[2])
	if FuzzyIsNull(l) {
		return Vec3{}, 0
	}
	if FuzzyEqual(l, 1) {
		axis = Vec3{q[0], q[1], q[2]}
	} else {
		axis = Vec3{q[0] / l, q[1] / l, q[2] / l}
	}
	return axis, Rad2Deg(2 * math.Acos(q[3]))
}

// QuatFromEuler builds the quaternion for a rotation of rollDeg degrees
// around Z, then pitchDeg degrees around X, then yawDeg degrees around Y,
// in that order.
func QuatFromEuler(pitchDeg, yawDeg, rollDeg float64) Quat {
	c1, s1 := math.Cos(Deg2Rad(yawDeg)/2), math.Sin(Deg2Rad(yawDeg)/2)
	c2, s2 := math.Cos(Deg2Rad(rollDeg)/2), math.Sin(Deg2Rad(rollDeg)/2)
	c3, s3 := math.Cos(Deg2Rad(pitchDeg)/2), math.Sin(Deg2Rad(pitchDeg)/2)
	c1c2 := c1 * c2
	s1s2 := s1 * s2

	return Quat{
		c1c2*s3 + s1s2*c3,   // x
		s1*c2*c3 - c1*s2*s3, // y
		c1*s2*c3 - s1*c2*s3, // z
		c1c2*c3 + s1s2*s3,   // w
	}
}

// EulerAngles decomposes q into pitch, yaw and roll in degrees, matching
// the composition order of QuatFromEuler. Near the poles (|pitch| -> 90°)
// the decomposition is not unique; pitch snaps to ±90°, roll is reported
// as 0 and the residual rotation folds into yaw.
func (q Quat) EulerAngles() (pitchDeg, yawDeg, rollDeg float64) {
	// Gimbal lock is only detectable on a unit quaternion. Rescale
	// before forming products to avoid underflow.
	l := q.Len()
	xs, ys, zs, ws := q[0], q[1], q[2], q[3]
	if !FuzzyIsNull(l) {
		xs /= l
		ys /= l
		zs /= l
		ws /= l
	}

	xx, xy, xz, xw := xs*xs, xs*ys, xs*zs, xs*ws
	yy, yz, yw := ys*ys, ys*zs, ys*ws
	zz, zw := zs*zs, zs*ws

	// Outside the lock region yaw and roll contain a hidden division by
	// cos(pitch): atan2(a/cos p, b/cos p) = atan2(a, b). That identity
	// breaks down as |sin(pitch)| approaches 1.
	var pitch, yaw, roll float64
	sinp := -2 * (yz - xw)
	if math.Abs(sinp) < 1-gimbalEpsilon {
		pitch = math.Asin(sinp)
		yaw = math.Atan2(2*(xz+yw), 1-2*(xx+yy))
		roll = math.Atan2(2*(xy+zw), 1-2*(xx+zz))
	} else {
		pitch = math.Copysign(math.Pi/2, sinp)
		yaw = 2 * math.Atan2(ys, ws)
		roll = 0
	}
	return Rad2Deg(pitch), Rad2Deg(yaw), Rad2Deg(roll)
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix. No trig
// involved; a non-unit quaternion yields a matrix carrying scale.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// QuatFromMat3 extracts the quaternion corresponding to the rotation
// matrix m. When the trace is too small for the direct square-root
// formula, the branch for the dominant diagonal element is used instead,
// with cyclic index mapping i→j→k→i.
func QuatFromMat3(m Mat3) Quat {
	var q Quat

	trace := m[0] + m[4] + m[8]
	if trace > traceEpsilon {
		s := 2 * math.Sqrt(trace+1)
		q[3] = 0.25 * s
		q[0] = (m[7] - m[5]) / s
		q[1] = (m[2] - m[6]) / s
		q[2] = (m[3] - m[1]) / s
		return q
	}

	next := [3]int{1, 2, 0}
	i := 0
	if m[4] > m[0] {
		i = 1
	}
	if m[8] > m[i*3+i] {
		i = 2
	}
	j := next[i]
	k := next[j]

	s := 2 * math.Sqrt(m[i*3+i]-m[j*3+j]-m[k*3+k]+1)
	q[i] = 0.25 * s
	q[3] = (m[k*3+j] - m[j*3+k]) / s
	q[j] = (m[j*3+i] + m[i*3+j]) / s
	q[k] = (m[k*3+i] + m[i*3+k]) / s
	return q
}

// Axes returns the three orthonormal axes defined by q: the columns of
// its rotation matrix.
func (q Quat) Axes() (xAxis, yAxis, zAxis Vec3) {
	m := QuatToMat3(q)
	xAxis = Vec3{m[0], m[3], m[6]}
	yAxis = Vec3{m[1], m[4], m[7]}
	zAxis = Vec3{m[2], m[5], m[8]}
	return
}

// QuatFromAxes builds the quaternion whose rotation matrix has the given
// columns. The axes are assumed orthonormal; no check is performed.
func QuatFromAxes(xAxis, yAxis, zAxis Vec3) Quat {
	return QuatFromMat3(Mat3{
		xAxis[0], yAxis[0], zAxis[0],
		xAxis[1], yAxis[1], zAxis[1],
		xAxis[2], yAxis[2], zAxis[2],
	})
}

// QuatFromDirection builds an orientation whose forward (Z) axis points
// along direction, with up steering the remaining two axes. A zero
// direction yields identity. When up is collinear with direction (or
// zero) the frame is underdetermined and the shortest arc from the
// canonical forward axis is used instead.
func QuatFromDirection(direction, up Vec3) Quat {
	if FuzzyIsNull(direction[0]) && FuzzyIsNull(direction[1]) && FuzzyIsNull(direction[2]) {
		return QuatIdentity()
	}

	zAxis := direction.Normalized()
	xAxis := up.Cross(zAxis)
	if FuzzyIsNull(xAxis.Dot(xAxis)) {
		return RotationTo(Vec3{0, 0, 1}, zAxis)
	}

	xAxis = xAxis.Normalized()
	yAxis := zAxis.Cross(xAxis)
	return QuatFromAxes(xAxis, yAxis, zAxis)
}

// RotationTo returns the shortest-arc quaternion rotating the direction
// from onto the direction to (Stan Melax's construction). Antiparallel
// inputs admit any rotation axis; an arbitrary perpendicular is chosen,
// derived from the X axis first and the Y axis when from itself lies
// along X.
func RotationTo(from, to Vec3) Quat {
	v0 := from.Normalized()
	v1 := to.Normalized()

	d := v0.Dot(v1) + 1
	if FuzzyIsNull(d) {
		axis := Vec3{1, 0, 0}.Cross(v0)
		if FuzzyIsNull(axis.Dot(axis)) {
			axis = Vec3{0, 1, 0}.Cross(v0)
		}
		axis = axis.Normalized()
		// half turn: same as QuatFromAxisAngle(axis, 180)
		return Quat{axis[0], axis[1], axis[2], 0}
	}

	d = math.Sqrt(2 * d)
	axis := v0.Cross(v1).Scale(1 / d)
	return Quat{axis[0], axis[1], axis[2], d / 2}.Normalized()
}

// Slerp interpolates along the shortest spherical arc between q1 and q2.
// t is clamped to [0, 1]. When q1 and q2 are nearly identical the sine
// weights are numerically unstable and a linear blend is used instead.
func Slerp(q1, q2 Quat, t float64) Quat {
	if t <= 0 {
		return q1
	}
	if t >= 1 {
		return q2
	}

	// Negating one endpoint keeps the blend on the short arc: q and -q
	// are the same rotation.
	q2b := q2
	dot := q1.Dot(q2)
	if dot < 0 {
		q2b = q2b.Neg()
		dot = -dot
	}

	f1, f2 := 1-t, t
	if 1-dot > slerpEpsilon {
		angle := math.Acos(dot)
		sinAngle := math.Sin(angle)
		if sinAngle > slerpEpsilon {
			f1 = math.Sin((1-t)*angle) / sinAngle
			f2 = math.Sin(t*angle) / sinAngle
		}
	}
	return q1.Scale(f1).Add(q2b.Scale(f2))
}

// Nlerp interpolates linearly between q1 and q2 with the same short-arc
// sign correction as Slerp, then normalizes. Cheaper and approximate;
// the result is always unit length.
func Nlerp(q1, q2 Quat, t float64) Quat {
	if t <= 0 {
		return q1
	}
	if t >= 1 {
		return q2
	}

	q2b := q2
	if q1.Dot(q2) < 0 {
		q2b = q2b.Neg()
	}
	return q1.Scale(1 - t).Add(q2b.Scale(t)).Normalized()
}

// quatWireSize is the encoded size: four float64 components.
const quatWireSize = 32

// MarshalBinary encodes q as four little-endian float64 values, scalar
// part first, then x, y, z.
func (q Quat) MarshalBinary() ([]byte, error) {
	buf := make([]byte, quatWireSize)
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(q[3]))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(q[0]))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(q[1]))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(q[2]))
	return buf, nil
}

// UnmarshalBinary decodes the wire form produced by MarshalBinary.
func (q *Quat) UnmarshalBinary(data []byte) error {
	if len(data) != quatWireSize {
		return fmt.Errorf("mathutil: quaternion needs %d bytes, got %d", quatWireSize, len(data))
	}
	q[3] = math.Float64frombits(binary.LittleEndian.Uint64(data[0:]))
	q[0] = math.Float64frombits(binary.LittleEndian.Uint64(data[8:]))
	q[1] = math.Float64frombits(binary.LittleEndian.Uint64(data[16:]))
	q[2] = math.Float64frombits(binary.LittleEndian.Uint64(data[24:]))
	return nil
}

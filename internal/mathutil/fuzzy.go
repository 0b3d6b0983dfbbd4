package mathutil

import "math"

// fuzzyEpsilon is the shared float64 comparison tolerance: relative for
// non-zero magnitudes (FuzzyEqual), absolute near zero (FuzzyIsNull).
// Every threshold check in this package goes through these two helpers,
// except the trig-domain epsilons documented in quaternion.go.
const fuzzyEpsilon = 1e-12

// FuzzyEqual reports whether a and b are equal within a tolerance scaled
// by the smaller of the two magnitudes. The scaling makes it useless for
// comparing against zero; use FuzzyIsNull for that.
func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) <= fuzzyEpsilon*math.Min(math.Abs(a), math.Abs(b))
}

// FuzzyIsNull reports whether v is zero within an absolute tolerance.
func FuzzyIsNull(v float64) bool {
	return math.Abs(v) <= fuzzyEpsilon
}

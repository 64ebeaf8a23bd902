package validate

import "math"

// Positive rejects any entry of xs that is not strictly positive.
func Positive(op string, xs []float64) error {
	for i, x := range xs {
		if !(x > 0) {
			return Domain(op, "value %v at index %d must be > 0", x, i)
		}
	}
	return nil
}

// LogBase resolves the optional logarithm base. No base means natural log.
func LogBase(op string, base ...float64) (float64, error) {
	switch len(base) {
	case 0:
		return math.E, nil
	case 1:
	default:
		return 0, Dimension(op, "expected at most one base, got %d", len(base))
	}
	b := base[0]
	if !(b > 0) || b == 1 {
		return 0, Domain(op, "invalid logarithm base %v", b)
	}
	return b, nil
}

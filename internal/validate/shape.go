package validate

import "gonum.org/v1/gonum/mat"

// Value validates a node value: a non-empty scalar or vector of numbers.
func Value(op string, v any) ([]float64, error) {
	a, err := Flatten(op, v)
	if err != nil {
		return nil, err
	}
	if a.NDim() > 1 {
		return nil, Dimension(op, "value must be a scalar or a vector, got shape %v", a.Shape)
	}
	if len(a.Data) == 0 {
		return nil, Dimension(op, "value cannot be empty")
	}
	return a.Data, nil
}

// Jacobian validates der against a value of length m and reshapes it to m×n.
//
// For m == 1 a scalar, a vector or any single-row matrix is accepted and
// becomes a 1×n row. For m > 1 the leading dimension must equal m.
func Jacobian(op string, der any, m int) (*mat.Dense, error) {
	a, err := Flatten(op, der)
	if err != nil {
		return nil, err
	}
	nd := a.NDim()
	if nd > 2 {
		return nil, Dimension(op, "derivative must be at most 2-D, got shape %v", a.Shape)
	}
	if len(a.Data) == 0 {
		return nil, Dimension(op, "derivative cannot be empty")
	}

	switch {
	case m == 1 && (nd <= 1 || a.Shape[0] == 1):
		return mat.NewDense(1, len(a.Data), a.Data), nil
	case m > 1 && nd >= 1 && a.Shape[0] == m:
		return mat.NewDense(m, len(a.Data)/m, a.Data), nil
	}
	return nil, Dimension(op, "derivative shape %v does not match value length %d", a.Shape, m)
}

// Shape checks an already numeric Jacobian against a value of length m.
// Engines call it on every node they construct.
func Shape(op string, m int, der mat.Matrix) error {
	if der == nil {
		return Dimension(op, "missing derivative")
	}
	r, c := der.Dims()
	if m < 1 {
		return Dimension(op, "value cannot be empty")
	}
	if r != m {
		return Dimension(op, "derivative has %d rows, value has length %d", r, m)
	}
	if c < 1 {
		return Dimension(op, "derivative has no seed columns")
	}
	return nil
}

// Broadcast returns the common length of two operands under length-1
// broadcasting.
func Broadcast(op string, m, n int) (int, error) {
	switch {
	case m == n:
		return m, nil
	case m == 1:
		return n, nil
	case n == 1:
		return m, nil
	}
	return 0, Dimension(op, "operand lengths %d and %d cannot be broadcast", m, n)
}

// Package forward implements forward-mode automatic differentiation.
//
// A Node carries a value vector of length m together with its m×n Jacobian
// with respect to a fixed set of n seed variables. Every operation applies
// the chain rule and returns a brand-new Node; nodes are never mutated.
//
// Usage:
//
//	xs, _ := forward.Create([]float64{2, 3})
//	z := xs[0].Mul(xs[1]).PowConst(5)
//	z.Value()    // 7776
//	z.Gradient() // [19440 12960]
package forward

import (
	"fmt"

	"github.com/born-ml/bambanta/internal/validate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Node is an immutable (value, Jacobian) pair.
type Node struct {
	val []float64  // length m ≥ 1
	der *mat.Dense // m×n, row i = ∂val[i]/∂seeds
}

// New validates val and der and returns a new Node.
//
// val must be a scalar or a vector. If val has a single entry, der may be a
// scalar, a vector or a single-row matrix; otherwise der must have one row per
// value entry.
func New(val, der any) (*Node, error) {
	v, err := validate.Value("forward.New", val)
	if err != nil {
		return nil, err
	}
	d, err := validate.Jacobian("forward.New", der, len(v))
	if err != nil {
		return nil, err
	}
	return &Node{val: v, der: d}, nil
}

// build wraps internally computed components. The inputs come from nodes that
// were already validated, so a failure here is a programming error.
func build(op string, val []float64, der *mat.Dense) *Node {
	if err := validate.Shape(op, len(val), der); err != nil {
		panic(err)
	}
	return &Node{val: val, der: der}
}

// Len returns the number of outputs m.
func (n *Node) Len() int {
	return len(n.val)
}

// NumVars returns the number of seed variables n.
func (n *Node) NumVars() int {
	_, c := n.der.Dims()
	return c
}

// Val returns a copy of the value vector.
func (n *Node) Val() []float64 {
	return append([]float64(nil), n.val...)
}

// Jac returns a copy of the m×n Jacobian.
func (n *Node) Jac() *mat.Dense {
	return mat.DenseCopyOf(n.der)
}

// Value returns the value of a single-output node.
// Panics if the node has more than one output.
func (n *Node) Value() float64 {
	n.mustScalar("Value")
	return n.val[0]
}

// Gradient returns the single Jacobian row of a single-output node.
// Panics if the node has more than one output.
func (n *Node) Gradient() []float64 {
	n.mustScalar("Gradient")
	return mat.Row(nil, 0, n.der)
}

func (n *Node) mustScalar(op string) {
	if len(n.val) != 1 {
		panic(validate.Dimension("forward."+op, "node has %d outputs, want 1", len(n.val)))
	}
}

// Equal reports whether both nodes have identical values and Jacobians.
func (n *Node) Equal(other *Node) bool {
	if len(n.val) != len(other.val) || n.NumVars() != other.NumVars() {
		return false
	}
	return floats.Equal(n.val, other.val) && mat.Equal(n.der, other.der)
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("forward.Node(val=%v, der=%v)", n.val, mat.Formatted(n.der, mat.FormatPython()))
}

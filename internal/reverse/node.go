package reverse

import (
	"fmt"

	"github.com/born-ml/bambanta/internal/validate"
	"gonum.org/v1/gonum/floats"
)

// Node is a handle to a value in a Graph.
//
// Copying a Node copies the handle, not the value: every copy refers to the
// same arena entry and sees the same edges and cached derivative.
type Node struct {
	g  *Graph
	id int
}

// Graph returns the graph that owns the node.
func (n Node) Graph() *Graph {
	return n.g
}

func (n Node) entry() *entry {
	return &n.g.nodes[n.id]
}

// Len returns the length of the node value.
func (n Node) Len() int {
	return len(n.entry().val)
}

// Val returns a copy of the node value.
func (n Node) Val() []float64 {
	return append([]float64(nil), n.entry().val...)
}

// Value returns the value of a scalar node.
// Panics if the node holds a vector.
func (n Node) Value() float64 {
	n.mustScalar("Value")
	return n.entry().val[0]
}

// NumEdges returns how many later expressions consumed this node.
func (n Node) NumEdges() int {
	return len(n.entry().edges)
}

// Outer marks n as the output of the sweep by seeding its derivative with 1.
// Call it once, on the node whose derivatives are wanted, after the
// expression is fully built.
func (n Node) Outer() {
	e := n.entry()
	e.der = make([]float64, len(e.val))
	floats.AddConst(1, e.der)
}

// Grad returns the total derivative of the output seeded by Outer with
// respect to n. The result is cached; repeated calls return the same value
// until the node is reset.
func (n Node) Grad() []float64 {
	return append([]float64(nil), n.g.grad(n.id)...)
}

// Partial returns Grad for a scalar node.
// Panics if the node holds a vector.
func (n Node) Partial() float64 {
	n.mustScalar("Partial")
	return n.g.grad(n.id)[0]
}

func (n Node) mustScalar(op string) {
	if l := n.Len(); l != 1 {
		panic(validate.Dimension("reverse."+op, "node holds %d values, want 1", l))
	}
}

// Equal reports whether both nodes hold the same value and the same cached
// derivative (both unset counts as equal).
func (n Node) Equal(other Node) bool {
	a, b := n.entry(), other.entry()
	if !floats.Equal(a.val, b.val) {
		return false
	}
	if a.der == nil || b.der == nil {
		return a.der == nil && b.der == nil
	}
	return floats.Equal(a.der, b.der)
}

// String implements fmt.Stringer. It does not trigger a sweep.
func (n Node) String() string {
	e := n.entry()
	if e.der == nil {
		return fmt.Sprintf("reverse.Node(val=%v, der=unset)", e.val)
	}
	return fmt.Sprintf("reverse.Node(val=%v, der=%v)", e.val, e.der)
}

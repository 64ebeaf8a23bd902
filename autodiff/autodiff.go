// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides forward-mode and reverse-mode automatic
// differentiation of numeric expressions.
//
// Forward mode propagates every value together with its full Jacobian with
// respect to a fixed set of seed variables; it is the cheaper choice when
// there are few inputs. Reverse mode records a dependency graph while the
// expression is evaluated and recovers all partial derivatives with one
// backward sweep from the output; it is the cheaper choice when there are few
// outputs.
//
// Example:
//
//	import "github.com/born-ml/bambanta/autodiff"
//
//	func main() {
//	    // Forward mode
//	    xs, _ := autodiff.CreateForward([]float64{2, 3})
//	    z := xs[0].Mul(xs[1]).PowConst(5)
//	    fmt.Println(z.Value(), z.Gradient()) // 7776 [19440 12960]
//
//	    // Reverse mode
//	    ys, _ := autodiff.CreateReverse([]float64{5, 7})
//	    w := ys[0].Mul(ys[1])
//	    w.Outer()
//	    fmt.Println(ys[0].Partial(), ys[1].Partial()) // 7 5
//	}
package autodiff

import (
	"github.com/born-ml/bambanta/internal/elementary"
	"github.com/born-ml/bambanta/internal/forward"
	"github.com/born-ml/bambanta/internal/reverse"
	"github.com/born-ml/bambanta/internal/validate"
)

// ForwardNode is an immutable value with its Jacobian.
type ForwardNode = forward.Node

// ReverseNode is a handle to a node of a reverse-mode Graph.
type ReverseNode = reverse.Node

// Graph owns reverse-mode nodes and their edges.
type Graph = reverse.Graph

// Func is a differentiable scalar function rule.
type Func = elementary.Func

// Error kinds. Use errors.Is to match them.
var (
	ErrTypeKind    = validate.ErrTypeKind
	ErrDimension   = validate.ErrDimension
	ErrDomain      = validate.ErrDomain
	ErrForeignNode = reverse.ErrForeignNode
)

// Error carries the kind, operation and details of a rejected input.
type Error = validate.Error

// NewForward validates a value and its Jacobian and returns a forward node.
func NewForward(val, der any) (*ForwardNode, error) {
	return forward.New(val, der)
}

// CreateForward builds forward-mode seed nodes: one per scalar of a vector
// (seeded with an identity Jacobian) or one per row of a matrix.
func CreateForward(values any) ([]*ForwardNode, error) {
	return forward.Create(values)
}

// Stack merges forward nodes into one vector-output node by concatenating
// values and stacking Jacobian rows.
func Stack(nodes ...*ForwardNode) (*ForwardNode, error) {
	return forward.Stack(nodes...)
}

// NewGraph creates an empty reverse-mode graph.
func NewGraph() *Graph {
	return reverse.NewGraph()
}

// CreateReverse builds reverse-mode seed nodes in a new graph. Nodes returned
// by one call share a graph and can be combined; nodes from different calls
// cannot.
func CreateReverse(values any) ([]ReverseNode, error) {
	return reverse.NewGraph().Create(values)
}

// Reset clears the cached derivative and the edges of each node so the same
// inputs can be reused in a new expression.
func Reset(nodes ...ReverseNode) {
	for _, n := range nodes {
		n.Graph().Reset(n)
	}
}

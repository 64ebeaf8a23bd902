// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/born-ml/bambanta/internal/forward"
	"github.com/born-ml/bambanta/internal/parallel"
	"github.com/born-ml/bambanta/internal/reverse"
	"github.com/born-ml/bambanta/internal/validate"
	"gonum.org/v1/gonum/mat"
)

// Jacobian evaluates fn at the point at in forward mode and returns the
// m×n Jacobian of its output. One pass yields every output's derivatives, so
// prefer it when len(at) is small.
func Jacobian(fn func(xs []*ForwardNode) *ForwardNode, at []float64) (*mat.Dense, error) {
	xs, err := forward.Create(at)
	if err != nil {
		return nil, err
	}
	out := fn(xs)
	if out == nil {
		return nil, validate.Dimension("autodiff.Jacobian", "function returned no output")
	}
	return out.Jac(), nil
}

// Gradient evaluates the scalar function fn at the point at in reverse mode
// and returns its gradient. One sweep yields every input's derivative, so
// prefer it when there are many inputs and a single output.
func Gradient(fn func(xs []ReverseNode) ReverseNode, at []float64) ([]float64, error) {
	xs, err := reverse.NewGraph().Create(at)
	if err != nil {
		return nil, err
	}
	out := fn(xs)
	if out.Graph() != xs[0].Graph() {
		return nil, validate.Dimension("autodiff.Gradient", "output does not belong to the input graph")
	}
	if out.Len() != 1 {
		return nil, validate.Dimension("autodiff.Gradient", "output holds %d values, want 1", out.Len())
	}
	out.Outer()

	grad := make([]float64, len(xs))
	for i, x := range xs {
		grad[i] = x.Partial()
	}
	return grad, nil
}

// ReverseJacobian evaluates fn at the point at in reverse mode and returns the
// Jacobian of its scalar outputs, one backward sweep per output.
func ReverseJacobian(fn func(xs []ReverseNode) []ReverseNode, at []float64) (*mat.Dense, error) {
	g := reverse.NewGraph()
	xs, err := g.Create(at)
	if err != nil {
		return nil, err
	}
	outs := fn(xs)
	if len(outs) == 0 {
		return nil, validate.Dimension("autodiff.ReverseJacobian", "function returned no outputs")
	}

	jac := mat.NewDense(len(outs), len(xs), nil)
	for i, out := range outs {
		if out.Graph() != g {
			return nil, validate.Dimension("autodiff.ReverseJacobian", "output %d does not belong to the input graph", i)
		}
		if out.Len() != 1 {
			return nil, validate.Dimension("autodiff.ReverseJacobian", "output %d holds %d values, want 1", i, out.Len())
		}
		g.ClearGrads()
		out.Outer()
		for j, x := range xs {
			jac.Set(i, j, x.Partial())
		}
	}
	return jac, nil
}

// JacobianBatch evaluates Jacobian at every point. Points are processed
// concurrently, each with its own seed nodes, so fn must not share nodes
// between calls.
func JacobianBatch(fn func(xs []*ForwardNode) *ForwardNode, points [][]float64) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(points))
	err := parallel.For(len(points), func(i int) error {
		jac, err := Jacobian(fn, points[i])
		out[i] = jac
		return err
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GradientBatch evaluates Gradient at every point. Each point gets its own
// graph, so points are swept concurrently.
func GradientBatch(fn func(xs []ReverseNode) ReverseNode, points [][]float64) ([][]float64, error) {
	out := make([][]float64, len(points))
	err := parallel.For(len(points), func(i int) error {
		grad, err := Gradient(fn, points[i])
		out[i] = grad
		return err
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return out, nil
}

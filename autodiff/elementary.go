// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/born-ml/bambanta/internal/elementary"
	"github.com/born-ml/bambanta/internal/validate"
)

// Operand is any value the elementary functions accept: a plain number, a
// forward node or a reverse node.
type Operand interface {
	float64 | *ForwardNode | ReverseNode
}

// Apply evaluates fn on x.
//
//   - float64: returns fn(x)
//   - *ForwardNode: returns a new node with each Jacobian row scaled by fn'(x)
//   - ReverseNode: returns a new node and records fn'(x) as an edge on x
func Apply[T Operand](x T, fn Func) T {
	var out any
	switch v := any(x).(type) {
	case float64:
		out = fn.Eval(v)
	case *ForwardNode:
		out = v.Apply(fn)
	case ReverseNode:
		out = v.Apply(fn)
	}
	return out.(T)
}

// Sin returns sin(x).
func Sin[T Operand](x T) T { return Apply(x, elementary.Sin) }

// Cos returns cos(x).
func Cos[T Operand](x T) T { return Apply(x, elementary.Cos) }

// Tan returns tan(x).
func Tan[T Operand](x T) T { return Apply(x, elementary.Tan) }

// Arcsin returns asin(x).
func Arcsin[T Operand](x T) T { return Apply(x, elementary.Arcsin) }

// Arccos returns acos(x).
func Arccos[T Operand](x T) T { return Apply(x, elementary.Arccos) }

// Arctan returns atan(x).
func Arctan[T Operand](x T) T { return Apply(x, elementary.Arctan) }

// Sinh returns sinh(x).
func Sinh[T Operand](x T) T { return Apply(x, elementary.Sinh) }

// Cosh returns cosh(x).
func Cosh[T Operand](x T) T { return Apply(x, elementary.Cosh) }

// Tanh returns tanh(x).
func Tanh[T Operand](x T) T { return Apply(x, elementary.Tanh) }

// Exp returns e**x.
func Exp[T Operand](x T) T { return Apply(x, elementary.Exp) }

// Sqrt returns the square root of x.
func Sqrt[T Operand](x T) T { return Apply(x, elementary.Sqrt) }

// Abs returns |x|. Its derivative is undefined at zero.
func Abs[T Operand](x T) T { return Apply(x, elementary.Abs) }

// Neg returns -x.
func Neg[T Operand](x T) T {
	var out any
	switch v := any(x).(type) {
	case float64:
		out = -v
	case *ForwardNode:
		out = v.Neg()
	case ReverseNode:
		out = v.Neg()
	}
	return out.(T)
}

// Log returns the logarithm of x in the optional base (natural by default).
//
// It fails with ErrDomain when any value of x is not strictly positive or the
// base is not a positive number other than 1. A failed call records nothing
// in a reverse graph.
func Log[T Operand](x T, base ...float64) (T, error) {
	var zero T
	switch v := any(x).(type) {
	case float64:
		b, err := validate.LogBase("log", base...)
		if err != nil {
			return zero, err
		}
		if err := validate.Positive("log", []float64{v}); err != nil {
			return zero, err
		}
		return any(elementary.Log(b).Eval(v)).(T), nil
	case *ForwardNode:
		n, err := v.Log(base...)
		if err != nil {
			return zero, err
		}
		return any(n).(T), nil
	case ReverseNode:
		n, err := v.Log(base...)
		if err != nil {
			return zero, err
		}
		return any(n).(T), nil
	}
	return zero, nil
}

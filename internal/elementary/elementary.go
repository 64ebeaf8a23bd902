// Package elementary holds the derivative rules shared by the forward and
// reverse engines.
//
// Each Func pairs a scalar function with its first derivative. Values are
// computed with the standard math package; the engines decide how the
// derivative is applied (row scaling of a Jacobian in forward mode, an edge
// weight in reverse mode).
package elementary

import "math"

// Func is a differentiable scalar function.
type Func struct {
	Name  string
	Eval  func(float64) float64 // f(x)
	Deriv func(float64) float64 // f'(x)
}

// Map applies f elementwise to xs and returns a new slice.
func (f Func) Map(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Eval(x)
	}
	return out
}

// DerivMap applies f' elementwise to xs and returns a new slice.
func (f Func) DerivMap(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Deriv(x)
	}
	return out
}

// Rules for the supported elementary functions.
var (
	Sin = Func{Name: "sin", Eval: math.Sin, Deriv: math.Cos}

	Cos = Func{Name: "cos", Eval: math.Cos, Deriv: func(x float64) float64 {
		return -math.Sin(x)
	}}

	Tan = Func{Name: "tan", Eval: math.Tan, Deriv: func(x float64) float64 {
		c := math.Cos(x)
		return 1 / (c * c)
	}}

	Arcsin = Func{Name: "arcsin", Eval: math.Asin, Deriv: func(x float64) float64 {
		return 1 / math.Sqrt(1-x*x)
	}}

	Arccos = Func{Name: "arccos", Eval: math.Acos, Deriv: func(x float64) float64 {
		return -1 / math.Sqrt(1-x*x)
	}}

	Arctan = Func{Name: "arctan", Eval: math.Atan, Deriv: func(x float64) float64 {
		return 1 / (1 + x*x)
	}}

	Sinh = Func{Name: "sinh", Eval: math.Sinh, Deriv: math.Cosh}

	Cosh = Func{Name: "cosh", Eval: math.Cosh, Deriv: math.Sinh}

	Tanh = Func{Name: "tanh", Eval: math.Tanh, Deriv: func(x float64) float64 {
		t := math.Tanh(x)
		return 1 - t*t
	}}

	Exp = Func{Name: "exp", Eval: math.Exp, Deriv: math.Exp}

	Sqrt = Func{Name: "sqrt", Eval: math.Sqrt, Deriv: func(x float64) float64 {
		return 0.5 / math.Sqrt(x)
	}}

	// Abs has derivative sign(x) = x/|x|, which is NaN at zero.
	Abs = Func{Name: "abs", Eval: math.Abs, Deriv: func(x float64) float64 {
		return x / math.Abs(x)
	}}
)

// Log returns the logarithm rule for base. The caller validates the base and
// the domain of the argument.
func Log(base float64) Func {
	if base == math.E {
		return Func{Name: "log", Eval: math.Log, Deriv: func(x float64) float64 {
			return 1 / x
		}}
	}
	lnb := math.Log(base)
	return Func{
		Name: "log",
		Eval: func(x float64) float64 {
			switch base {
			case 2:
				return math.Log2(x)
			case 10:
				return math.Log10(x)
			}
			return math.Log(x) / lnb
		},
		Deriv: func(x float64) float64 {
			return 1 / (x * lnb)
		},
	}
}

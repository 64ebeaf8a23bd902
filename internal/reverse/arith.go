package reverse

import (
	"math"

	"github.com/born-ml/bambanta/internal/elementary"
	"github.com/born-ml/bambanta/internal/validate"
	"github.com/pkg/errors"
)

var one = []float64{1}

// pair validates a binary operation and returns both values broadcast to the
// result length.
func (n Node) pair(op string, other Node) (a, b []float64) {
	if n.g != other.g {
		panic(errors.Wrap(ErrForeignNode, op))
	}
	av, bv := n.entry().val, other.entry().val
	m, err := validate.Broadcast(op, len(av), len(bv))
	if err != nil {
		panic(err)
	}
	return expand(av, m), expand(bv, m)
}

// binary appends z with value val and records edges on both operands.
func (n Node) binary(other Node, val, wa, wb []float64) Node {
	z := n.g.add(val)
	n.g.link(n.id, z.id, wa)
	n.g.link(other.id, z.id, wb)
	return z
}

// unary appends z with value val and records one edge on n.
func (n Node) unary(val, w []float64) Node {
	z := n.g.add(val)
	n.g.link(n.id, z.id, w)
	return z
}

// Add returns n + other. Partials (1, 1).
func (n Node) Add(other Node) Node {
	a, b := n.pair("reverse.Add", other)
	return n.binary(other, zip(a, b, func(x, y float64) float64 { return x + y }), one, one)
}

// AddConst returns n + c. Addition is commutative, so this also covers c + n.
func (n Node) AddConst(c float64) Node {
	return n.unary(n.mapVal(func(x float64) float64 { return x + c }), one)
}

// Sub returns n - other. Partials (1, -1).
func (n Node) Sub(other Node) Node {
	a, b := n.pair("reverse.Sub", other)
	return n.binary(other, zip(a, b, func(x, y float64) float64 { return x - y }), one, []float64{-1})
}

// SubConst returns n - c.
func (n Node) SubConst(c float64) Node {
	return n.unary(n.mapVal(func(x float64) float64 { return x - c }), one)
}

// RSub returns c - n.
func (n Node) RSub(c float64) Node {
	return n.unary(n.mapVal(func(x float64) float64 { return c - x }), []float64{-1})
}

// Mul returns n * other. Partials (other, n).
func (n Node) Mul(other Node) Node {
	a, b := n.pair("reverse.Mul", other)
	return n.binary(other, zip(a, b, func(x, y float64) float64 { return x * y }), b, a)
}

// MulConst returns n * c. Also covers c * n.
func (n Node) MulConst(c float64) Node {
	return n.unary(n.mapVal(func(x float64) float64 { return x * c }), []float64{c})
}

// Div returns n / other. Partials (1/other, -n/other²).
func (n Node) Div(other Node) Node {
	a, b := n.pair("reverse.Div", other)
	val := zip(a, b, func(x, y float64) float64 { return x / y })
	wa := mapSlice(b, func(y float64) float64 { return 1 / y })
	wb := zip(a, b, func(x, y float64) float64 { return -x / (y * y) })
	return n.binary(other, val, wa, wb)
}

// DivConst returns n / c.
func (n Node) DivConst(c float64) Node {
	return n.unary(n.mapVal(func(x float64) float64 { return x / c }), []float64{1 / c})
}

// RDiv returns c / n. Partial -c/n².
func (n Node) RDiv(c float64) Node {
	return n.unary(
		n.mapVal(func(x float64) float64 { return c / x }),
		n.mapVal(func(x float64) float64 { return -c / (x * x) }),
	)
}

// Pow returns n ** other. Partials (b·a^(b-1), a^b·ln(a)).
func (n Node) Pow(other Node) Node {
	a, b := n.pair("reverse.Pow", other)
	val := zip(a, b, math.Pow)
	wa := zip(a, b, func(x, y float64) float64 { return math.Pow(x, y-1) * y })
	wb := zip(a, b, func(x, y float64) float64 { return math.Pow(x, y) * math.Log(x) })
	return n.binary(other, val, wa, wb)
}

// PowConst returns n ** k. Partial k·n^(k-1).
func (n Node) PowConst(k float64) Node {
	return n.unary(
		n.mapVal(func(x float64) float64 { return math.Pow(x, k) }),
		n.mapVal(func(x float64) float64 { return math.Pow(x, k-1) * k }),
	)
}

// RPow returns c ** n. Partial c^n·ln(c).
func (n Node) RPow(c float64) Node {
	lnc := math.Log(c)
	return n.unary(
		n.mapVal(func(x float64) float64 { return math.Pow(c, x) }),
		n.mapVal(func(x float64) float64 { return math.Pow(c, x) * lnc }),
	)
}

// Neg returns -n.
func (n Node) Neg() Node {
	return n.unary(n.mapVal(func(x float64) float64 { return -x }), []float64{-1})
}

// Abs returns |n| with partial sign(n). The partial is undefined at zero.
func (n Node) Abs() Node {
	return n.Apply(elementary.Abs)
}

// Apply returns fn(n) and records fn'(n) as the edge weight.
func (n Node) Apply(fn elementary.Func) Node {
	val := n.entry().val
	return n.unary(fn.Map(val), fn.DerivMap(val))
}

// Log returns the logarithm of n in the optional base (natural by default).
// Every entry of n must be strictly positive.
func (n Node) Log(base ...float64) (Node, error) {
	b, err := validate.LogBase("reverse.Log", base...)
	if err != nil {
		return Node{}, err
	}
	if err := validate.Positive("reverse.Log", n.entry().val); err != nil {
		return Node{}, err
	}
	return n.Apply(elementary.Log(b)), nil
}

func (n Node) mapVal(f func(float64) float64) []float64 {
	return mapSlice(n.entry().val, f)
}

func mapSlice(s []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(s))
	for i, x := range s {
		out[i] = f(x)
	}
	return out
}

func zip(a, b []float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = f(a[i], b[i])
	}
	return out
}

func expand(v []float64, m int) []float64 {
	if len(v) == m {
		return v
	}
	out := make([]float64, m)
	for i := range out {
		out[i] = v[0]
	}
	return out
}

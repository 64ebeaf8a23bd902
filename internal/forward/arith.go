package forward

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Nodes never modify their Jacobian after construction, so operations that
// leave it unchanged share it with their operand.

// Add returns n + other.
func (n *Node) Add(other *Node) *Node {
	av, ad, bv, bd := align("forward.Add", n, other)
	val := floats.AddTo(make([]float64, len(av)), av, bv)
	var der mat.Dense
	der.Add(ad, bd)
	return build("forward.Add", val, &der)
}

// AddConst returns n + c. Addition is commutative, so this also covers c + n.
func (n *Node) AddConst(c float64) *Node {
	val := n.Val()
	floats.AddConst(c, val)
	return build("forward.AddConst", val, n.der)
}

// Sub returns n - other.
func (n *Node) Sub(other *Node) *Node {
	av, ad, bv, bd := align("forward.Sub", n, other)
	val := floats.SubTo(make([]float64, len(av)), av, bv)
	var der mat.Dense
	der.Sub(ad, bd)
	return build("forward.Sub", val, &der)
}

// SubConst returns n - c.
func (n *Node) SubConst(c float64) *Node {
	return n.AddConst(-c)
}

// RSub returns c - n.
func (n *Node) RSub(c float64) *Node {
	val := mapVal(n.val, func(x float64) float64 { return c - x })
	var der mat.Dense
	der.Scale(-1, n.der)
	return build("forward.RSub", val, &der)
}

// Mul returns n * other (elementwise).
//
// der = diag(a)·B' + diag(b)·A', each Jacobian row scaled by the matching
// output value of the other operand.
func (n *Node) Mul(other *Node) *Node {
	av, ad, bv, bd := align("forward.Mul", n, other)
	val := floats.MulTo(make([]float64, len(av)), av, bv)
	der := rowScale(av, bd)
	der.Add(der, rowScale(bv, ad))
	return build("forward.Mul", val, der)
}

// MulConst returns n * c. Also covers c * n.
func (n *Node) MulConst(c float64) *Node {
	val := n.Val()
	floats.Scale(c, val)
	var der mat.Dense
	der.Scale(c, n.der)
	return build("forward.MulConst", val, &der)
}

// Div returns n / other using the quotient rule.
func (n *Node) Div(other *Node) *Node {
	av, ad, bv, bd := align("forward.Div", n, other)
	val := floats.DivTo(make([]float64, len(av)), av, bv)
	inv := mapVal(bv, func(y float64) float64 { return 1 / y })
	quot := zipVal(av, bv, func(x, y float64) float64 { return x / (y * y) })
	der := rowScale(inv, ad)
	der.Sub(der, rowScale(quot, bd))
	return build("forward.Div", val, der)
}

// DivConst returns n / c.
func (n *Node) DivConst(c float64) *Node {
	val := mapVal(n.val, func(x float64) float64 { return x / c })
	var der mat.Dense
	der.Scale(1/c, n.der)
	return build("forward.DivConst", val, &der)
}

// RDiv returns c / n.
func (n *Node) RDiv(c float64) *Node {
	val := mapVal(n.val, func(x float64) float64 { return c / x })
	scale := mapVal(n.val, func(x float64) float64 { return -c / (x * x) })
	return build("forward.RDiv", val, rowScale(scale, n.der))
}

// Neg returns -n.
func (n *Node) Neg() *Node {
	val := mapVal(n.val, func(x float64) float64 { return -x })
	var der mat.Dense
	der.Scale(-1, n.der)
	return build("forward.Neg", val, &der)
}

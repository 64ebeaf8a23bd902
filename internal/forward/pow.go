package forward

import (
	"math"

	"github.com/born-ml/bambanta/internal/elementary"
	"github.com/born-ml/bambanta/internal/validate"
)

// Pow returns n ** other.
//
//	d(a^b) = a^b · (b/a · da + ln(a) · db)
func (n *Node) Pow(other *Node) *Node {
	av, ad, bv, bd := align("forward.Pow", n, other)
	val := zipVal(av, bv, math.Pow)
	coefA := make([]float64, len(val))
	coefB := make([]float64, len(val))
	for i, p := range val {
		coefA[i] = p * bv[i] / av[i]
		coefB[i] = p * math.Log(av[i])
	}
	der := rowScale(coefA, ad)
	der.Add(der, rowScale(coefB, bd))
	return build("forward.Pow", val, der)
}

// PowConst returns n ** k.
//
//	d(a^k) = k · a^(k-1) · da
func (n *Node) PowConst(k float64) *Node {
	val := mapVal(n.val, func(x float64) float64 { return math.Pow(x, k) })
	scale := mapVal(n.val, func(x float64) float64 { return k * math.Pow(x, k-1) })
	return build("forward.PowConst", val, rowScale(scale, n.der))
}

// RPow returns c ** n.
//
//	d(c^a) = ln(c) · c^a · da
func (n *Node) RPow(c float64) *Node {
	val := mapVal(n.val, func(x float64) float64 { return math.Pow(c, x) })
	lnc := math.Log(c)
	scale := mapVal(val, func(p float64) float64 { return lnc * p })
	return build("forward.RPow", val, rowScale(scale, n.der))
}

// Apply evaluates fn on every output and scales each Jacobian row by fn'.
func (n *Node) Apply(fn elementary.Func) *Node {
	return build("forward."+fn.Name, fn.Map(n.val), rowScale(fn.DerivMap(n.val), n.der))
}

// Abs returns |n|. The derivative is undefined where the value is zero.
func (n *Node) Abs() *Node {
	return n.Apply(elementary.Abs)
}

// Log returns the logarithm of n in the optional base (natural by default).
// Every output must be strictly positive.
func (n *Node) Log(base ...float64) (*Node, error) {
	b, err := validate.LogBase("forward.Log", base...)
	if err != nil {
		return nil, err
	}
	if err := validate.Positive("forward.Log", n.val); err != nil {
		return nil, err
	}
	return n.Apply(elementary.Log(b)), nil
}

package forward

import (
	"github.com/born-ml/bambanta/internal/validate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// align brings two operands to a common number of outputs.
//
// A single-output node combined with an m-output node has its value and its
// Jacobian row repeated m times. Both nodes must track the same seeds.
func align(op string, a, b *Node) (av []float64, ad *mat.Dense, bv []float64, bd *mat.Dense) {
	if a.NumVars() != b.NumVars() {
		panic(validate.Dimension(op, "operands track %d and %d seed variables", a.NumVars(), b.NumVars()))
	}
	m, err := validate.Broadcast(op, len(a.val), len(b.val))
	if err != nil {
		panic(err)
	}
	return expandVal(a.val, m), expandDer(a.der, m), expandVal(b.val, m), expandDer(b.der, m)
}

func expandVal(v []float64, m int) []float64 {
	if len(v) == m {
		return v
	}
	out := make([]float64, m)
	for i := range out {
		out[i] = v[0]
	}
	return out
}

func expandDer(d *mat.Dense, m int) *mat.Dense {
	r, c := d.Dims()
	if r == m {
		return d
	}
	out := mat.NewDense(m, c, nil)
	row := d.RawRowView(0)
	for i := 0; i < m; i++ {
		out.SetRow(i, row)
	}
	return out
}

// rowScale returns diag(s)·d: row i of d multiplied by s[i].
func rowScale(s []float64, d *mat.Dense) *mat.Dense {
	r, c := d.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		floats.ScaleTo(out.RawRowView(i), s[i], d.RawRowView(i))
	}
	return out
}

// mapVal returns f(v[i]) for every entry.
func mapVal(v []float64, f func(x float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}

// zipVal returns f(a[i], b[i]) for every entry of two equally long slices.
func zipVal(a, b []float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = f(a[i], b[i])
	}
	return out
}

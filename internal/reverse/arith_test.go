package reverse

import (
	"math"
	"testing"

	"github.com/born-ml/bambanta/internal/elementary"
	"github.com/born-ml/bambanta/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, 5.0), mustVar(t, g, 7.0)

	sum := x.Add(y)
	sum.Outer()
	assert.Equal(t, 12.0, sum.Value())
	assert.Equal(t, 1.0, x.Partial())
	assert.Equal(t, 1.0, y.Partial())
	g.Reset(x, y)

	sum = x.AddConst(3)
	sum.Outer()
	assert.Equal(t, 8.0, sum.Value())
	assert.Equal(t, 1.0, x.Partial())

	sum = y.AddConst(3)
	sum.Outer()
	assert.Equal(t, 10.0, sum.Value())
	assert.Equal(t, 1.0, y.Partial())
}

func TestSub(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, 5.0), mustVar(t, g, 7.0)

	d := y.Sub(x)
	d.Outer()
	assert.Equal(t, 2.0, d.Value())
	assert.Equal(t, -1.0, x.Partial())
	assert.Equal(t, 1.0, y.Partial())
	g.Reset(x, y)

	d = x.SubConst(3)
	d.Outer()
	assert.Equal(t, 2.0, d.Value())
	assert.Equal(t, 1.0, x.Partial())

	d = y.RSub(3)
	d.Outer()
	assert.Equal(t, -4.0, d.Value())
	assert.Equal(t, -1.0, y.Partial())
}

func TestMul(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, 5.0), mustVar(t, g, 7.0)

	z := x.Mul(y)
	z.Outer()
	assert.Equal(t, 35.0, z.Value())
	assert.Equal(t, 7.0, x.Partial())
	assert.Equal(t, 5.0, y.Partial())
	g.Reset(x, y)

	z = x.MulConst(3)
	z.Outer()
	assert.Equal(t, 15.0, z.Value())
	assert.Equal(t, 3.0, x.Partial())

	z = y.MulConst(3)
	z.Outer()
	assert.Equal(t, 21.0, z.Value())
	assert.Equal(t, 3.0, y.Partial())
}

func TestDiv(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, 4.0), mustVar(t, g, 8.0)

	q := y.Div(x)
	q.Outer()
	assert.Equal(t, 2.0, q.Value())
	assert.Equal(t, -0.5, x.Partial())
	assert.Equal(t, 0.25, y.Partial())
	g.Reset(x, y)

	q = x.DivConst(2)
	q.Outer()
	assert.Equal(t, 2.0, q.Value())
	assert.Equal(t, 0.5, x.Partial())

	q = y.RDiv(2)
	q.Outer()
	assert.Equal(t, 0.25, q.Value())
	assert.Equal(t, -0.03125, y.Partial())
}

func TestPow(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, 2.0), mustVar(t, g, 3.0)
	a, b := mustVar(t, g, 1.0), mustVar(t, g, 2.0)

	p := x.Pow(y)
	p.Outer()
	assert.Equal(t, 8.0, p.Value())
	assert.InDelta(t, 12.0, x.Partial(), 1e-8)
	assert.InDelta(t, 5.54517744, y.Partial(), 1e-8)
	g.Reset(x, y)

	p = x.Mul(y).PowConst(5)
	p.Outer()
	assert.Equal(t, 7776.0, p.Value())
	assert.InDelta(t, 19440.0, x.Partial(), 1e-8)
	assert.InDelta(t, 12960.0, y.Partial(), 1e-8)

	p = a.Mul(b).RPow(5)
	p.Outer()
	assert.InDelta(t, 25.0, p.Value(), 1e-12)
	assert.InDelta(t, 80.47189562, a.Partial(), 1e-8)
	assert.InDelta(t, 40.23594781, b.Partial(), 1e-8)
}

func TestNeg(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, 6.5), mustVar(t, g, 3.0)

	z := x.Neg().Sub(y.Apply(elementary.Cos))
	z.Outer()
	assert.Equal(t, -1.0, x.Partial())
	assert.InDelta(t, 0.1411200080598672, y.Partial(), 1e-12)
	assert.InDelta(t, -5.510007503399555, z.Value(), 1e-12)
	assert.Equal(t, 6.5, x.Value(), "operand value must not change")
}

func TestAbs(t *testing.T) {
	g := NewGraph()
	x, y := mustVar(t, g, -6.5), mustVar(t, g, 3.0)

	z := x.Abs().Mul(y.Apply(elementary.Sin))
	z.Outer()
	assert.InDelta(t, 0.9172800523891369, z.Value(), 1e-12)
	assert.InDelta(t, -0.1411200080598672, x.Partial(), 1e-12)
	assert.InDelta(t, -6.4349512279028955, y.Partial(), 1e-12)

	g2 := NewGraph()
	a := mustVar(t, g2, -8.0)
	b := a.Abs()
	b.Outer()
	assert.Equal(t, 8.0, b.Value())
	assert.Equal(t, -1.0, a.Partial())
	assert.Equal(t, 1, a.NumEdges())
}

func TestApply(t *testing.T) {
	g := NewGraph()
	a, b := mustVar(t, g, 0.25), mustVar(t, g, -0.10)
	c := a.Apply(elementary.Arcsin).Add(b.Apply(elementary.Arcsin))
	c.Outer()
	assert.InDelta(t, 0.15251283, c.Value(), 1e-8)
	assert.InDelta(t, 1.03279556, a.Partial(), 1e-8)

	g = NewGraph()
	a, b = mustVar(t, g, 0.40), mustVar(t, g, -0.55)
	c = a.Apply(elementary.Arccos).Add(b.Apply(elementary.Arccos))
	c.Outer()
	assert.InDelta(t, 3.31244005, c.Value(), 1e-8)
	assert.InDelta(t, -1.09108945, a.Partial(), 1e-8)

	g = NewGraph()
	a, b = mustVar(t, g, 0.30), mustVar(t, g, -0.25)
	c = a.Apply(elementary.Arctan).Add(b)
	c.Outer()
	assert.InDelta(t, 0.04145679, c.Value(), 1e-8)
	assert.InDelta(t, 0.91743119, a.Partial(), 1e-8)
	assert.Equal(t, 1.0, b.Partial())
}

func TestLog(t *testing.T) {
	g := NewGraph()
	x := mustVar(t, g, 8.0)

	l, err := x.Log()
	require.NoError(t, err)
	l.Outer()
	assert.InDelta(t, 2.07944154, l.Value(), 1e-8)
	assert.Equal(t, 0.125, x.Partial())
	g.Reset(x)

	l, err = x.Log(2)
	require.NoError(t, err)
	l.Outer()
	assert.InDelta(t, 3.0, l.Value(), 1e-15)
	assert.InDelta(t, 1/(8*math.Ln2), x.Partial(), 1e-15)

	neg := mustVar(t, g, -4.0)
	_, err = neg.Log()
	require.ErrorIs(t, err, validate.ErrDomain)
	assert.Equal(t, 0, neg.NumEdges(), "failed log must not record an edge")

	_, err = x.Log(-1)
	require.ErrorIs(t, err, validate.ErrDomain)
}

func TestVectorNodes(t *testing.T) {
	g := NewGraph()
	rows, err := g.Create([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	a, b := rows[0], rows[1]

	z := a.Mul(b)
	z.Outer()
	assert.Equal(t, []float64{3, 8}, z.Val())
	assert.Equal(t, []float64{3, 4}, a.Grad())
	assert.Equal(t, []float64{1, 2}, b.Grad())
	assert.Panics(t, func() { a.Partial() })
}

func TestBroadcast(t *testing.T) {
	g := NewGraph()
	s := mustVar(t, g, 2.0)
	v := mustVar(t, g, []float64{1, 2, 3})

	// z = s·v, seeded with ones: ∂Σz/∂s = Σv, ∂z_i/∂v_i = s.
	z := s.Mul(v)
	z.Outer()
	assert.Equal(t, []float64{2, 4, 6}, z.Val())
	assert.Equal(t, 6.0, s.Partial())
	assert.Equal(t, []float64{2, 2, 2}, v.Grad())

	w := mustVar(t, g, []float64{1, 2})
	assert.Panics(t, func() { v.Add(w) })
}

package elementary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func TestFuncs_DerivativeMatchesFiniteDifference(t *testing.T) {
	tests := []struct {
		fn     Func
		points []float64
	}{
		{Sin, []float64{-2, 0, 1, 3.5}},
		{Cos, []float64{-2, 0, 1, 3.5}},
		{Tan, []float64{-1, 0, 0.7}},
		{Arcsin, []float64{-0.6, 0, 0.25, 0.9}},
		{Arccos, []float64{-0.55, 0, 0.4}},
		{Arctan, []float64{-3, 0, 0.3, 5}},
		{Sinh, []float64{-2, 0, 1.5}},
		{Cosh, []float64{-2, 0, 1.5}},
		{Tanh, []float64{-2, 0, 0.5}},
		{Exp, []float64{-1, 0, 2}},
		{Sqrt, []float64{0.25, 1, 9}},
		{Abs, []float64{-8, -0.5, 3}},
		{Log(math.E), []float64{0.5, 1, 8}},
		{Log(2), []float64{0.5, 1, 8}},
		{Log(10), []float64{0.5, 1, 100}},
		{Log(3), []float64{0.5, 1, 27}},
	}

	for _, tt := range tests {
		t.Run(tt.fn.Name, func(t *testing.T) {
			for _, x := range tt.points {
				want := fd.Derivative(tt.fn.Eval, x, &fd.Settings{Formula: fd.Central})
				assert.InDelta(t, want, tt.fn.Deriv(x), 1e-5, "%s'(%v)", tt.fn.Name, x)
			}
		})
	}
}

func TestFuncs_KnownValues(t *testing.T) {
	assert.InDelta(t, -0.27941549819892586, Sin.Eval(6), 1e-15)
	assert.InDelta(t, 0.2836621854632263, Cos.Eval(5), 1e-15)
	assert.InDelta(t, 1.5707963267948966, Arcsin.Eval(1), 1e-15)
	assert.InDelta(t, 1.0471975511965976, Arccos.Eval(0.5), 1e-15)
	assert.InDelta(t, 148.4131591025766, Exp.Eval(5), 1e-12)
	assert.InDelta(t, 1.6094379124341003, Log(math.E).Eval(5), 1e-15)
	assert.InDelta(t, 3.0, Log(2).Eval(8), 1e-15)
	assert.InDelta(t, 2.0, Log(10).Eval(100), 1e-15)
	assert.InDelta(t, 3.0, Log(3).Eval(27), 1e-12)
}

func TestFunc_Map(t *testing.T) {
	xs := []float64{1, 4, 9}

	assert.Equal(t, []float64{1, 2, 3}, Sqrt.Map(xs))
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 1.0 / 6}, Sqrt.DerivMap(xs), 1e-15)
	assert.Equal(t, []float64{1, 4, 9}, xs, "input must not be modified")
}

func TestAbs_UndefinedAtZero(t *testing.T) {
	assert.True(t, math.IsNaN(Abs.Deriv(0)))
}

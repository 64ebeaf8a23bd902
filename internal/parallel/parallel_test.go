package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}

	var counter int64
	out := make([]int, 1000)

	err := For(len(out), func(i int) error {
		atomic.AddInt64(&counter, 1)
		out[i] = i * i
		return nil
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(len(out)), counter)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	err := For(5, func(i int) error {
		order = append(order, i)
		return nil
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_FirstError(t *testing.T) {
	errLow := errors.New("low")
	errHigh := errors.New("high")

	for _, cfg := range []Config{
		{Enabled: false},
		{Enabled: true, NumWorkers: 8, MinChunkSize: 1},
	} {
		var counter int64
		err := For(100, func(i int) error {
			atomic.AddInt64(&counter, 1)
			switch i {
			case 17:
				return errLow
			case 80:
				return errHigh
			}
			return nil
		}, cfg)
		assert.ErrorIs(t, err, errLow)
		assert.Equal(t, int64(100), counter)
	}
}

func TestFor_Empty(t *testing.T) {
	err := For(0, func(int) error {
		t.Fatal("must not be called")
		return nil
	}, DefaultConfig())
	assert.NoError(t, err)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = For(n, func(i int) error {
				atomic.AddInt64(&sum, int64(i))
				return nil
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = For(n, func(i int) error {
				atomic.AddInt64(&sum, int64(i))
				return nil
			}, cfgSeq)
		}
	})
}

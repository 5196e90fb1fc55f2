package randengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yudono/gta/utils/randengine"
)

func TestDeterministic(t *testing.T) {
	a, b := randengine.New(42), randengine.New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, randengine.Derive(42, 3), randengine.Derive(42, 3))
	assert.NotEqual(t, randengine.Derive(42, 3), randengine.Derive(42, 4))
}

func TestDistributions(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 100; i++ {
		v := e.Uniform(2, 4)
		assert.GreaterOrEqual(t, v, 2.)
		assert.Less(t, v, 4.)
	}
	assert.False(t, e.PTrue(0))
	assert.True(t, e.PTrue(1))

	for i := 0; i < 100; i++ {
		assert.Equal(t, int32(2), e.DiscreteDistribution([]float64{0, 0, 1, 0}))
	}
	assert.Panics(t, func() { e.DiscreteDistribution([]float64{0, 0}) })
}

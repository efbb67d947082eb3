package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataGenStaysNearMean(t *testing.T) {
	gen := NewDataGenService(70.0, 3.0)
	for i := 0; i < 1000; i++ {
		value := gen.CalculateNextValue()
		assert.False(t, math.IsNaN(value))
		assert.False(t, math.IsInf(value, 0))
		// mean reversion keeps the walk well within a few deviations
		assert.InDelta(t, 70.0, value, 30.0)
	}
}

func TestDataGenZeroDeviationConverges(t *testing.T) {
	gen := NewDataGenService(10.0, 0.0)
	var value float64
	for i := 0; i < 100; i++ {
		value = gen.CalculateNextValue()
	}
	assert.InDelta(t, 10.0, value, 1e-3)
}

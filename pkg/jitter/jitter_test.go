package jitter

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	base := 100 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}

	// Нулевой коэффициент не меняет длительность
	assert.Equal(t, base, Duration(base, 0))
}

func TestDurationWithSeed(t *testing.T) {
	base := 100 * time.Millisecond

	first := DurationWithSeed(base, DefaultJitter, rand.New(rand.NewPCG(1, 2)))
	second := DurationWithSeed(base, DefaultJitter, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, first, second)
}

func TestExponentialBackoff(t *testing.T) {
	base := 50 * time.Millisecond
	max := time.Second

	// Без джиттера рост строго удваивается
	assert.Equal(t, 50*time.Millisecond, ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 100*time.Millisecond, ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 200*time.Millisecond, ExponentialBackoff(base, max, 2, 0))

	// Ограничение сверху срабатывает на больших попытках
	assert.Equal(t, max, ExponentialBackoff(base, max, 20, 0))

	// Джиттер не пробивает полтора максимума
	d := ExponentialBackoff(base, max, 20, DefaultJitter)
	assert.GreaterOrEqual(t, d, max)
	assert.LessOrEqual(t, d, max+max/2)
}

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/compliport/compliport/internal/schedule"
)

func TestHashSeed(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, schedule.HashSeed("client1:fire safety:2025"),
			schedule.HashSeed("client1:fire safety:2025"))
	})

	t.Run("empty string hashes to offset basis", func(t *testing.T) {
		assert.Equal(t, uint32(2166136261), schedule.HashSeed(""))
	})

	t.Run("distinct inputs diverge", func(t *testing.T) {
		assert.NotEqual(t, schedule.HashSeed("client1:first aid:2025"),
			schedule.HashSeed("client1:first aid:2026"))
		assert.NotEqual(t, schedule.HashSeed("client1:first aid:2025"),
			schedule.HashSeed("client2:first aid:2025"))
	})
}

func TestRand(t *testing.T) {
	t.Run("same seed yields same stream", func(t *testing.T) {
		a := schedule.NewRand(42)
		b := schedule.NewRand(42)
		for i := 0; i < 100; i++ {
			assert.Equal(t, a.Float64(), b.Float64())
		}
	})

	t.Run("float64 stays in unit interval", func(t *testing.T) {
		rng := schedule.NewRand(7)
		for i := 0; i < 1000; i++ {
			f := rng.Float64()
			assert.GreaterOrEqual(t, f, 0.0)
			assert.Less(t, f, 1.0)
		}
	})

	t.Run("known LCG sequence", func(t *testing.T) {
		// state = 1664525*0 + 1013904223 after the first step.
		rng := schedule.NewRand(0)
		assert.InDelta(t, float64(1013904223)/(1<<32), rng.Float64(), 1e-12)
	})

	t.Run("int between is inclusive", func(t *testing.T) {
		rng := schedule.NewRand(99)
		seen := map[int]bool{}
		for i := 0; i < 2000; i++ {
			n := rng.IntBetween(-3, 3)
			assert.GreaterOrEqual(t, n, -3)
			assert.LessOrEqual(t, n, 3)
			seen[n] = true
		}
		// A healthy generator hits every value in a small range.
		for v := -3; v <= 3; v++ {
			assert.True(t, seen[v], "value %d never drawn", v)
		}
	})
}

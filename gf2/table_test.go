package gf2

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for range 10 {
		m, _ := randomInvertible(t, rng)
		tab := NewTable(&m)

		assert.Equal(t, uint64(0), tab.Apply(0))
		assert.Equal(t, m.Apply(^uint64(0)), tab.Apply(^uint64(0)))
		for i := 0; i < Dim; i++ {
			x := uint64(1) << uint(i)
			assert.Equal(t, m.Apply(x), tab.Apply(x), "unit vector %d", i)
		}
		for range 2000 {
			x := rng.Uint64()
			assert.Equal(t, m.Apply(x), tab.Apply(x), "x=%#x", x)
		}
	}
}

func TestTable_SingularMatrix(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	m := randomMatrix(rng)
	m[9] = 0
	tab := NewTable(&m)
	for range 500 {
		x := rng.Uint64()
		assert.Equal(t, m.Apply(x), tab.Apply(x))
	}
}

func TestTable_Reset(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	a, b := randomMatrix(rng), randomMatrix(rng)
	tab := NewTable(&a)
	tab.Reset(&b)
	for range 500 {
		x := rng.Uint64()
		assert.Equal(t, b.Apply(x), tab.Apply(x))
	}
}

func TestTable_ApplyAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 18))
	m := randomMatrix(rng)
	tab := NewTable(&m)

	src := make([]uint64, 257)
	for i := range src {
		src[i] = rng.Uint64()
	}
	dst := make([]uint64, len(src)+3)
	tab.ApplyAll(dst, src)
	for i, x := range src {
		assert.Equal(t, m.Apply(x), dst[i])
	}
	assert.Equal(t, uint64(0), dst[len(src)])
}

func BenchmarkApply(b *testing.B) {
	rng := rand.New(rand.NewPCG(19, 20))
	m := randomMatrix(rng)
	tab := NewTable(&m)
	x := rng.Uint64()

	b.Run("naive", func(b *testing.B) {
		var sink uint64
		for i := 0; i < b.N; i++ {
			sink ^= m.Apply(x + uint64(i))
		}
		_ = sink
	})
	b.Run("table", func(b *testing.B) {
		var sink uint64
		for i := 0; i < b.N; i++ {
			sink ^= tab.Apply(x + uint64(i))
		}
		_ = sink
	})
}

package slicefile

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/joux/gf2"
)

func identitySlice(l int, cm ...uint64) *Slice {
	return &Slice{M: gf2.Identity(), Minv: gf2.Identity(), L: l, CM: cm}
}

func randomSlice(t *testing.T, rng *rand.Rand, l, n int) *Slice {
	t.Helper()
	for {
		var m gf2.Matrix
		for i := range m {
			m[i] = rng.Uint64()
		}
		inv, ok := m.Inverse()
		if !ok {
			continue
		}
		cm := make([]uint64, n)
		for i := range cm {
			cm[i] = (rng.Uint64() >> uint(l)) | 1
		}
		return &Slice{M: m, Minv: inv, L: l, CM: cm}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	in := []*Slice{
		randomSlice(t, rng, 20, 3),
		randomSlice(t, rng, 32, 0),
		identitySlice(0, 0),
		randomSlice(t, rng, 64-1, 100),
	}
	buf := Encode(in...)

	seq, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, len(in), seq.Len())
	assert.Equal(t, len(buf)/8, seq.Words())
	assert.Equal(t, buf, seq.Bytes())

	i := 0
	for s := range seq.All() {
		want := in[i]
		assert.Equal(t, want.M, s.M)
		assert.Equal(t, want.Minv, s.Minv)
		assert.Equal(t, want.L, s.L)
		assert.Equal(t, len(want.CM), len(s.CM))
		if len(want.CM) > 0 {
			assert.Equal(t, want.CM, s.CM)
		}
		assert.True(t, s.Invertible())
		i++
	}
	assert.Equal(t, len(in), i)
}

func TestParse_Empty(t *testing.T) {
	seq, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
	for range seq.All() {
		t.Fatal("empty sequence yielded a slice")
	}

	var nilSeq *Sequence
	assert.Equal(t, 0, nilSeq.Len())
	for range nilSeq.All() {
		t.Fatal("nil sequence yielded a slice")
	}
}

func TestAll_StopsEarly(t *testing.T) {
	seq, err := Parse(Encode(identitySlice(0, 1), identitySlice(0, 2), identitySlice(0, 3)))
	require.NoError(t, err)

	n := 0
	for range seq.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestParse_Malformed(t *testing.T) {
	good := Append(nil, identitySlice(8, 1, 2))

	tests := []struct {
		name  string
		words func() []uint64
	}{
		{"truncated header", func() []uint64 { return good[:HeaderWords-1] }},
		{"truncated CM", func() []uint64 { return good[:len(good)-1] }},
		{"trailing garbage", func() []uint64 { return append(append([]uint64{}, good...), 7) }},
		{"n too large", func() []uint64 {
			w := append([]uint64{}, good...)
			w[128] = 1 << 62
			return w
		}},
		{"l too large", func() []uint64 {
			w := append([]uint64{}, good...)
			w[129] = 65
			return w
		}},
		{"CM top bits set", func() []uint64 {
			w := append([]uint64{}, good...)
			w[HeaderWords] = 1 << 60
			return w
		}},
		{"bad inverse", func() []uint64 {
			w := append([]uint64{}, good...)
			w[64] = 3
			return w
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWords(tt.words())
			require.ErrorIs(t, err, ErrMalformed)
			var fe *FormatError
			assert.ErrorAs(t, err, &fe)
		})
	}

	_, err := Parse(make([]byte, 12))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFormatError_Locates(t *testing.T) {
	words := Append(nil, identitySlice(0, 1))
	words = Append(words, identitySlice(4, 1<<63))

	_, err := FromWords(words)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Slice)
	assert.Equal(t, HeaderWords+1, fe.Offset)
	assert.Contains(t, fe.Error(), "slice 1")
}

package testutil

import (
	"github.com/hupe1980/joux/slicefile"
)

// PlantConfig shapes a planted instance.
type PlantConfig struct {
	// N0 and N1 are the number of random fingerprints in each list.
	N0, N1 int
	// Slices is the number of slices.
	Slices int
	// PerSlice is the number of triples planted for every slice.
	PerSlice int
	// L is the bit-width of every slice; must be below 64.
	L int
	// CMSize is the number of candidates per slice (at least PerSlice).
	CMSize int
}

// Instance is a task input with known solutions.
type Instance struct {
	L0, L1 []uint64
	Slices []*slicefile.Slice
	// Planted holds (x, y, z) triples with x in L0, y in L1, x^y^z == 0.
	Planted [][3]uint64
}

// Planted builds an instance: random lists with PerSlice pairs per slice
// whose XOR projects onto a candidate of that slice. Random pairs match a
// slice with probability CMSize/2^64, so Planted is the full solution set in
// practice.
func (r *RNG) Planted(cfg PlantConfig) *Instance {
	inst := &Instance{
		L0: r.Fingerprints(cfg.N0),
		L1: r.Fingerprints(cfg.N1),
	}
	for s := 0; s < cfg.Slices; s++ {
		sl := r.Slice(cfg.L, max(cfg.CMSize, cfg.PerSlice))
		inst.Slices = append(inst.Slices, sl)
		for p := 0; p < cfg.PerSlice; p++ {
			z := sl.Minv.Apply(sl.CM[p])
			x := r.Fingerprints(1)[0]
			y := x ^ z
			if y == 0 {
				p--
				continue
			}
			inst.L0 = append(inst.L0, x)
			inst.L1 = append(inst.L1, y)
			inst.Planted = append(inst.Planted, [3]uint64{x, y, z})
		}
	}
	r.Shuffle(inst.L0)
	r.Shuffle(inst.L1)
	return inst
}

// Sequence encodes the instance slices as a validated sequence.
// It panics if the slices are malformed.
func (inst *Instance) Sequence() *slicefile.Sequence {
	return MustSequence(inst.Slices...)
}

// MustSequence encodes slices as a validated sequence.
// It panics if the slices are malformed.
func MustSequence(slices ...*slicefile.Slice) *slicefile.Sequence {
	var words []uint64
	for _, s := range slices {
		words = slicefile.Append(words, s)
	}
	seq, err := slicefile.FromWords(words)
	if err != nil {
		panic(err)
	}
	return seq
}

package hashset

// Linear is an open-addressing table with linear probing from h0(x).
type Linear struct {
	slots
}

// BuildLinear builds a linear-probing table of size slots.
// size must be a power of two larger than the number of distinct values.
func BuildLinear(values []uint64, size int) *Linear {
	l := &Linear{slots: newSlots(size)}
	for _, x := range values {
		if x == 0 {
			if !l.hasZero {
				l.hasZero = true
				l.n++
			}
			continue
		}
		if l.insert(x) {
			l.n++
		}
	}
	return l
}

func (l *Linear) insert(x uint64) bool {
	h := l.h0(x)
	for l.h[h] != 0 {
		if l.h[h] == x {
			return false
		}
		h = (h + 1) & l.mask
	}
	l.h[h] = x
	return true
}

// Contains reports whether x is in the table. It walks from h0(x) to the
// first empty slot.
func (l *Linear) Contains(x uint64) bool {
	if x == 0 {
		return l.hasZero
	}
	h := l.h0(x)
	for {
		probe := l.h[h]
		if probe == x {
			return true
		}
		if probe == 0 {
			return false
		}
		h = (h + 1) & l.mask
	}
}

// Kind returns KindLinear.
func (l *Linear) Kind() Kind { return KindLinear }

package hashset

// Cuckoo is a two-function cuckoo table: x lives at h0(x) = x & mask or at
// h1(x) = (x >> 16) & mask.
type Cuckoo struct {
	slots
}

// BuildCuckoo builds a cuckoo table of size slots. ok is false if some value
// could not be placed within 2*size displacements.
func BuildCuckoo(values []uint64, size int) (c *Cuckoo, ok bool) {
	if !isPow2(size) {
		return nil, false
	}
	c = &Cuckoo{slots: newSlots(size)}
	for _, x := range values {
		if c.Contains(x) {
			continue
		}
		if x == 0 {
			c.hasZero = true
			c.n++
			continue
		}
		if !c.insert(x) {
			return nil, false
		}
		c.n++
	}
	return c, true
}

func (c *Cuckoo) insert(x uint64) bool {
	h := c.h0(x)
	for loops := 0; loops < 2*len(c.h); loops++ {
		x, c.h[h] = c.h[h], x
		if x == 0 {
			return true
		}
		if g := c.h0(x); g != h {
			h = g
		} else {
			h = c.h1(x)
		}
	}
	return false
}

// Contains reports whether x is in the table. It probes at most two slots.
func (c *Cuckoo) Contains(x uint64) bool {
	if x == 0 {
		return c.hasZero
	}
	return c.h[c.h0(x)] == x || c.h[c.h1(x)] == x
}

// Kind returns KindCuckoo.
func (c *Cuckoo) Kind() Kind { return KindCuckoo }

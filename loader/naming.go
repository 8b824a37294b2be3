package loader

import "fmt"

// Naming holds the fmt patterns of the input blob names. Each pattern takes
// one unsigned integer.
type Naming struct {
	L0     string
	L1     string
	Slices string
}

// DefaultNaming returns foo.%03x, bar.%03x and %03x.
func DefaultNaming() Naming {
	return Naming{
		L0:     "foo.%03x",
		L1:     "bar.%03x",
		Slices: "%03x",
	}
}

// ListNames returns the blob names of L0 and L1 for task (i, j).
func (n Naming) ListNames(i, j uint32) (string, string) {
	return fmt.Sprintf(n.L0, i), fmt.Sprintf(n.L1, j)
}

// SliceName returns the blob name of slice set k.
func (n Naming) SliceName(k uint32) string {
	return fmt.Sprintf(n.Slices, k)
}

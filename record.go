package permgen

import "fmt"

// Groups maps each source of permutations to the record positions its
// symbols occupy. The groups must partition the whole record: Check
// enforces it once before any record is built.
type Groups [][]int

func (g Groups) Size() int {
	var z int
	for _, ixs := range g {
		z += len(ixs)
	}
	return z
}

func (g Groups) Check(n int) error {
	if len(g) == 0 {
		return fmt.Errorf("groups: empty mapping")
	}
	size := g.Size()
	seen := make([]bool, size)
	for i, ixs := range g {
		if len(ixs) != n {
			return fmt.Errorf("groups: group %d has %d indexes, want %d", i+1, len(ixs), n)
		}
		for _, ix := range ixs {
			if ix < 0 || ix >= size {
				return fmt.Errorf("groups: index %d out of range [0, %d)", ix, size)
			}
			if seen[ix] {
				return fmt.Errorf("groups: index %d assigned twice", ix)
			}
			seen[ix] = true
		}
	}
	return nil
}

// Assemble scatters the symbols of each permutation through its group's
// index table. With a checked mapping every position is written exactly
// once.
func (g Groups) Assemble(ps []string) []string {
	rec := make([]string, g.Size())
	for k, ixs := range g {
		ws := []rune(ps[k])
		for i, ix := range ixs {
			rec[ix] = string(ws[i])
		}
	}
	return rec
}

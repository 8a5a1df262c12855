package permgen

// Permutations returns every ordering of the symbols of alphabet, in
// lexicographic order of their positions. Computed once per run and
// shared by every group.
func Permutations(alphabet string) []string {
	var (
		rs = []rune(alphabet)
		ix = make([]int, len(rs))
	)
	for i := range ix {
		ix[i] = i
	}
	var ps []string
	for {
		ws := make([]rune, len(rs))
		for i, j := range ix {
			ws[i] = rs[j]
		}
		ps = append(ps, string(ws))
		if !nextPermutation(ix) {
			break
		}
	}
	return ps
}

func nextPermutation(ix []int) bool {
	i := len(ix) - 2
	for i >= 0 && ix[i] >= ix[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(ix) - 1
	for ix[j] <= ix[i] {
		j--
	}
	ix[i], ix[j] = ix[j], ix[i]
	for x, y := i+1, len(ix)-1; x < y; x, y = x+1, y-1 {
		ix[x], ix[y] = ix[y], ix[x]
	}
	return true
}

package permgen

import (
	"fmt"
	"io"

	"github.com/midbel/combine"
)

const (
	DefaultAlphabet = "bcdef"
	DefaultDir      = "output_chunks"
	DefaultPrefix   = "all_unique_arrays"
	DefaultExt      = "csv"
	DefaultLimit    = 50000
)

var DefaultGroups = Groups{
	{0, 3, 6, 9, 12},
	{1, 4, 7, 10, 13},
	{2, 5, 8, 11, 14},
}

type Config struct {
	Alphabet string
	Groups   Groups
	Dir      string
	Prefix   string
	Ext      string
	Limit    int
}

func Default() Config {
	return Config{
		Alphabet: DefaultAlphabet,
		Groups:   DefaultGroups,
		Dir:      DefaultDir,
		Prefix:   DefaultPrefix,
		Ext:      DefaultExt,
		Limit:    DefaultLimit,
	}
}

// Run enumerates every combination of one permutation per group,
// assembles each into a record and writes the records as CSV chunks
// under c.Dir. On success a single summary line is printed to w.
func (c Config) Run(w io.Writer) error {
	if err := c.check(); err != nil {
		return err
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	ck, err := createChunker(c.Dir, c.Prefix, c.Ext, c.Limit)
	if err != nil {
		return err
	}
	defer ck.Close()

	src := c.source()
	for !src.Done() {
		ps, err := src.Next()
		if err != nil {
			return err
		}
		if err := ck.Write(c.Groups.Assemble(ps)); err != nil {
			return err
		}
	}
	if err := ck.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Successfully generated %d CSV files in '%s' with a total of %d unique arrays.\n", ck.files, c.Dir, ck.total)
	return nil
}

// source composes one lazy Source per group over the shared permutation
// set. The fold keeps the first group outermost: its permutation only
// advances once every combination of the later groups is exhausted.
func (c Config) source() combine.Source {
	perms := Permutations(c.Alphabet)
	src := combine.Single(perms)
	for i := 1; i < len(c.Groups); i++ {
		src = combine.CombineSources(src, combine.Single(perms))
	}
	return src
}

func (c Config) check() error {
	if len(c.Alphabet) == 0 {
		return fmt.Errorf("empty alphabet")
	}
	seen := make(map[rune]bool)
	for _, r := range c.Alphabet {
		if seen[r] {
			return fmt.Errorf("alphabet: duplicate symbol %c", r)
		}
		seen[r] = true
	}
	return c.Groups.Check(len(seen))
}

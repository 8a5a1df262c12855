package permgen

import (
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	data := []struct {
		Groups Groups
		Perms  []string
		Record string
	}{
		{
			Groups: Groups{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}},
			Perms:  []string{"bcd", "bcd", "bcd"},
			Record: "b/b/b/c/c/c/d/d/d",
		},
		{
			Groups: Groups{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}},
			Perms:  []string{"bcd", "cdb", "dbc"},
			Record: "b/c/d/c/d/b/d/b/c",
		},
		{
			Groups: DefaultGroups,
			Perms:  []string{"bcdef", "bcdef", "bcdef"},
			Record: "b/b/b/c/c/c/d/d/d/e/e/e/f/f/f",
		},
		{
			Groups: DefaultGroups,
			Perms:  []string{"fedcb", "bcdef", "cbdef"},
			Record: "f/b/c/e/c/b/d/d/d/c/e/e/b/f/f",
		},
	}
	for i, d := range data {
		rec := d.Groups.Assemble(d.Perms)
		if len(rec) != d.Groups.Size() {
			t.Errorf("%d) record length mismatched! want %d, got %d", i+1, d.Groups.Size(), len(rec))
			continue
		}
		for j, str := range rec {
			if str == "" {
				t.Errorf("%d) position %d left empty", i+1, j)
			}
		}
		got := strings.Join(rec, "/")
		if got != d.Record {
			t.Errorf("%d) record mismatched! want %s, got %s", i+1, d.Record, got)
		}
	}
}

func TestGroupsCheck(t *testing.T) {
	data := []struct {
		Groups  Groups
		Size    int
		Invalid bool
	}{
		{
			Groups: DefaultGroups,
			Size:   5,
		},
		{
			Groups: Groups{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}},
			Size:   3,
		},
		{
			Groups:  Groups{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}},
			Size:    5,
			Invalid: true,
		},
		{
			Groups:  Groups{{0, 3, 6}, {0, 4, 7}, {2, 5, 8}},
			Size:    3,
			Invalid: true,
		},
		{
			Groups:  Groups{{0, 3, 9}, {1, 4, 7}, {2, 5, 8}},
			Size:    3,
			Invalid: true,
		},
		{
			Groups:  Groups{{0, 3, -1}, {1, 4, 7}, {2, 5, 8}},
			Size:    3,
			Invalid: true,
		},
		{
			Groups:  Groups{},
			Size:    3,
			Invalid: true,
		},
	}
	for i, d := range data {
		err := d.Groups.Check(d.Size)
		if d.Invalid && err == nil {
			t.Errorf("%d) invalid mapping accepted", i+1)
		}
		if !d.Invalid && err != nil {
			t.Errorf("%d) valid mapping rejected: %s", i+1, err)
		}
	}
}

package collation

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators keep internal buffers and are not safe for concurrent use.
var pool = sync.Pool{
	New: func() any {
		return collate.New(language.English, collate.Numeric)
	},
}

// Compare returns -1, 0 or 1 depending on whether a sorts before, equal to or
// after b.
func Compare(a, b string) int {
	c := pool.Get().(*collate.Collator)
	defer pool.Put(c)
	return compare(c, a, b)
}

func compare(c *collate.Collator, a, b string) int {
	if r := c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Sort orders ids in place.
func Sort(ids []string) {
	c := pool.Get().(*collate.Collator)
	defer pool.Put(c)
	slices.SortFunc(ids, func(a, b string) int {
		return compare(c, a, b)
	})
}

// Sorted returns a sorted copy of ids, leaving the input untouched.
func Sorted(ids []string) []string {
	out := slices.Clone(ids)
	Sort(out)
	return out
}

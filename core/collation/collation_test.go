package collation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_NumericRuns(t *testing.T) {
	ids := []string{"obj9", "obj10", "obj2"}
	Sort(ids)
	assert.Equal(t, []string{"obj2", "obj9", "obj10"}, ids)
}

func TestSort_PlainNumbers(t *testing.T) {
	ids := []string{"100", "9", "10", "1"}
	Sort(ids)
	assert.Equal(t, []string{"1", "9", "10", "100"}, ids)
}

func TestSort_BagIDs(t *testing.T) {
	ids := []string{"dynamic:channel:142", "dynamic:channel:42", "dynamic:channel:1000"}
	Sort(ids)
	assert.Equal(t, []string{"dynamic:channel:42", "dynamic:channel:142", "dynamic:channel:1000"}, ids)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare("9", "10"))
	assert.Equal(t, 1, Compare("10", "9"))
	assert.Equal(t, 0, Compare("42", "42"))
}

func TestCompare_TotalOrderOnCollationTies(t *testing.T) {
	// "7" and "007" have the same numeric value; byte order breaks the tie.
	assert.NotEqual(t, 0, Compare("7", "007"))
	assert.Equal(t, -Compare("7", "007"), Compare("007", "7"))
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	ids := []string{"b", "a"}
	out := Sorted(ids)
	assert.Equal(t, []string{"a", "b"}, out)
	assert.Equal(t, []string{"b", "a"}, ids)
}

func TestSort_Deterministic(t *testing.T) {
	first := []string{"3", "007", "7", "20", "2"}
	second := []string{"20", "7", "2", "007", "3"}
	Sort(first)
	Sort(second)
	assert.Equal(t, first, second)
}

func TestCompare_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, -1, Compare("obj2", "obj10"))
			}
		}()
	}
	wg.Wait()
}

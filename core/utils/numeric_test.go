package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Digits", "10", true},
		{"LeadingZeros", "007", true},
		{"Empty", "", false},
		{"Extension", "10.tmp", false},
		{"Letters", "abc", false},
		{"Signed", "-1", false},
		{"Plus", "+1", false},
		{"Space", " 1", false},
		{"Huge", "123456789012345678901234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.input))
		})
	}
}

func TestChunk(t *testing.T) {
	t.Run("Uneven", func(t *testing.T) {
		items := make([]int, 2500)
		chunks := Chunk(items, 1000)
		assert.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 1000)
		assert.Len(t, chunks[1], 1000)
		assert.Len(t, chunks[2], 500)
	})

	t.Run("Exact", func(t *testing.T) {
		chunks := Chunk([]string{"a", "b", "c", "d"}, 2)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, chunks)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, Chunk([]string{}, 10))
	})

	t.Run("InvalidSize", func(t *testing.T) {
		assert.Nil(t, Chunk([]string{"a"}, 0))
	})

	t.Run("AppendDoesNotLeak", func(t *testing.T) {
		items := []string{"a", "b", "c"}
		chunks := Chunk(items, 2)
		_ = append(chunks[0], "x")
		assert.Equal(t, "c", items[2])
	})
}

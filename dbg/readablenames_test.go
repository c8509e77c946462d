package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type triangle struct{ a, b, c int }

	first := Name(triangle{0, 1, 2})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(triangle{0, 1, 2}), "names are memoized by value")
	assert.Regexp(t, `^[A-Z]\w*[A-Z]\w*$`, first)

	var nilPointer *triangle
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPointer))
}

func TestName_Unhashable(t *testing.T) {
	path := []int{3, 1, 4}
	name := Name(path)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(path), "slices are named by identity")

	table := map[int]int{1: 0}
	assert.Equal(t, Name(table), Name(table))

	type walk struct{ steps []int }
	assert.Equal(t, Name(walk{[]int{1, 2}}), Name(walk{[]int{1, 2}}), "other values by their contents")

	assert.NotPanics(t, func() { Name(func() {}) })
}

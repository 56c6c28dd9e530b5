package fingertree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafs(values ...int) []measured[int] {
	ms := make([]measured[int], len(values))
	for i, v := range values {
		ms[i] = leaf[int]{v}
	}
	return ms
}

func TestDigitPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	d := digitOf(leafs(2, 3)...)
	dd, overflow, ok := d.prepend(leaf[int]{1})
	require.False(t, ok, "digit of length 2 must not overflow")
	assert.Nil(t, overflow)
	assert.Equal(t, "[1,2,3]", dd.describe())
	assert.Equal(t, "[2,3]", d.describe(), "original digit must be unchanged")
}

func TestDigitPrependOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	d := digitOf(leafs(2, 3, 4, 5)...)
	dd, overflow, ok := d.prepend(leaf[int]{1})
	require.True(t, ok, "full digit must overflow")
	assert.Equal(t, "[1,2]", dd.describe())
	assert.IsType(t, node3[int]{}, overflow)
	assert.Equal(t, "(3,4,5)", overflow.describe())
	assert.Equal(t, "[2,3,4,5]", d.describe(), "original digit must be unchanged")
}

func TestDigitAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	d := digitOf(leafs(1)...)
	dd, _, ok := d.append(leaf[int]{2})
	require.False(t, ok)
	assert.Equal(t, "[1,2]", dd.describe())
	//
	d = digitOf(leafs(1, 2, 3, 4)...)
	dd, overflow, ok := d.append(leaf[int]{5})
	require.True(t, ok, "full digit must overflow")
	assert.Equal(t, "[4,5]", dd.describe())
	assert.Equal(t, "(1,2,3)", overflow.describe())
	assert.Equal(t, "[1,2,3,4]", d.describe(), "original digit must be unchanged")
}

func TestDigitAppendDoesNotAlias(t *testing.T) {
	backing := make([]measured[int], 2, 4)
	copy(backing, leafs(1, 2))
	d := digit[int](backing)
	d1, _, _ := d.append(leaf[int]{3})
	d2, _, _ := d.append(leaf[int]{4})
	assert.Equal(t, "[1,2,3]", d1.describe())
	assert.Equal(t, "[1,2,4]", d2.describe())
}

func TestDigitCountAndFlatten(t *testing.T) {
	node := newNode3[int](leaf[int]{2}, leaf[int]{3}, leaf[int]{4})
	d := digitOf[int](leaf[int]{1}, node, leaf[int]{5})
	assert.Equal(t, 5, d.count())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, d.flatten(nil))
	assert.Equal(t, "[1,(2,3,4),5]", d.describe())
}

func TestDigitCombine(t *testing.T) {
	one := digitOf(leafs(5)...)
	// a 1-digit delegates to its value and does not wrap it in op(seed, …)
	assert.Equal(t, -5, one.combine(sub, 0))
	two := digitOf(leafs(5, 6)...)
	assert.Equal(t, 11, two.combine(add, 0))
	assert.Equal(t, 11, two.combine(sub, 0))
	assert.Equal(t, "xxaxb", digitOf[string](leaf[string]{"a"}, leaf[string]{"b"}).combine(concat, "x"))
}

func TestDigitLengthIsBounded(t *testing.T) {
	assert.Panics(t, func() { digitOf[int]() }, "empty digit must not be constructible")
	assert.Panics(t, func() { digitOf(leafs(1, 2, 3, 4, 5)...) }, "digit of 5 must not be constructible")
	assert.Panics(t, func() { digit[int]{}.prepend(leaf[int]{1}) }, "empty digit is an inconsistency")
}

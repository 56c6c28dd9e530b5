package fingertree

import (
	"fmt"
	"strings"
)

// measured is implemented by everything stored in a finger tree, at any level of
// nesting: leafs wrapping client values as well as the 2-3 nodes grouping values of
// the next level down. All operations on a tree recurse through this interface and
// therefore work the same at every level.
type measured[T any] interface {
	count() int                        // number of client values contained
	flatten(buf []T) []T               // append contained client values to buf, in order
	combine(op func(T, T) T, seed T) T // see Tree.Reduce
	describe() string                  // diagnostic rendering
	leftmost() T                       // first client value contained
	rightmost() T                      // last client value contained
}

// --- Leaf ------------------------------------------------------------------

// leaf adapts a client value to the measured interface.
type leaf[T any] struct {
	value T
}

func (l leaf[T]) count() int {
	return 1
}

func (l leaf[T]) flatten(buf []T) []T {
	return append(buf, l.value)
}

func (l leaf[T]) combine(op func(T, T) T, seed T) T {
	return op(seed, l.value)
}

func (l leaf[T]) describe() string {
	return fmt.Sprintf("%v", l.value)
}

func (l leaf[T]) leftmost() T {
	return l.value
}

func (l leaf[T]) rightmost() T {
	return l.value
}

// --- 2-3 nodes -------------------------------------------------------------

// node2 groups two values of level k into a single value of level k+1.
type node2[T any] struct {
	a, b measured[T]
}

func newNode2[T any](a, b measured[T]) measured[T] {
	return node2[T]{a: a, b: b}
}

func (n node2[T]) count() int {
	return n.a.count() + n.b.count()
}

func (n node2[T]) flatten(buf []T) []T {
	return n.b.flatten(n.a.flatten(buf))
}

func (n node2[T]) combine(op func(T, T) T, seed T) T {
	return combineEach(op, seed, n.a, n.b)
}

func (n node2[T]) describe() string {
	return describeEach('(', ')', n.a, n.b)
}

func (n node2[T]) leftmost() T {
	return n.a.leftmost()
}

func (n node2[T]) rightmost() T {
	return n.b.rightmost()
}

// node3 groups three values of level k into a single value of level k+1.
// Digit overflow produces node3s only.
type node3[T any] struct {
	a, b, c measured[T]
}

func newNode3[T any](a, b, c measured[T]) measured[T] {
	return node3[T]{a: a, b: b, c: c}
}

func (n node3[T]) count() int {
	return n.a.count() + n.b.count() + n.c.count()
}

func (n node3[T]) flatten(buf []T) []T {
	return n.c.flatten(n.b.flatten(n.a.flatten(buf)))
}

func (n node3[T]) combine(op func(T, T) T, seed T) T {
	return combineEach(op, seed, n.a, n.b, n.c)
}

func (n node3[T]) describe() string {
	return describeEach('(', ')', n.a, n.b, n.c)
}

func (n node3[T]) leftmost() T {
	return n.a.leftmost()
}

func (n node3[T]) rightmost() T {
	return n.c.rightmost()
}

// --- Helpers ---------------------------------------------------------------

// combineEach wraps the combination of every member in op, starting from seed:
//
//     op(op(op(seed, m0), m1), m2)
//
// where each mᵢ is combined starting from seed as well, not from the running result.
func combineEach[T any](op func(T, T) T, seed T, ms ...measured[T]) T {
	r := seed
	for _, m := range ms {
		r = op(r, m.combine(op, seed))
	}
	return r
}

func describeEach[T any](open, close byte, ms ...measured[T]) string {
	b := strings.Builder{}
	b.WriteByte(open)
	for i, m := range ms {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.describe())
	}
	b.WriteByte(close)
	return b.String()
}

package fingertree

import (
	"github.com/npillmayer/fingertree/maybe"
)

// Tree is an immutable persistent sequence of values of type T.
//
// The zero value is usable as an empty sequence, i.e. this is legal:
//
//     seq := fingertree.Tree[string]{}.Append("Galaxy")
//
type Tree[T any] struct {
	root fingerTree[T]
}

// Empty returns the empty sequence. It is safe to share between goroutines, as are
// all trees.
func Empty[T any]() Tree[T] {
	return Tree[T]{root: empty[T]{}}
}

func (t Tree[T]) tree() fingerTree[T] {
	if t.root == nil {
		return empty[T]{}
	}
	return t.root
}

// --- API -------------------------------------------------------------------

// Prepend returns a copy of t with value inserted at the front. t is left unchanged.
//
// Amortized cost is O(1).
func (t Tree[T]) Prepend(value T) Tree[T] {
	return Tree[T]{root: t.tree().prepend(leaf[T]{value})}
}

// Append returns a copy of t with value inserted at the back. t is left unchanged.
//
// Amortized cost is O(1).
func (t Tree[T]) Append(value T) Tree[T] {
	return Tree[T]{root: t.tree().append(leaf[T]{value})}
}

// Len returns the number of values in t.
func (t Tree[T]) Len() int {
	return t.tree().count()
}

// IsEmpty is true if t does not contain any values.
func (t Tree[T]) IsEmpty() bool {
	return t.tree().leftmost() == nil
}

// ToSlice returns the values of t in order. An empty tree returns a non-nil empty slice.
func (t Tree[T]) ToSlice() []T {
	buf := make([]T, 0, t.Len())
	return t.tree().flatten(buf)
}

// Reduce combines all values of t with op.
//
// Reduce does not thread an accumulator from left to right. For a deep tree it
// returns
//
//     op(op(op(seed, reduce(left)), reduce(middle)), reduce(right))
//
// where every part is reduced starting from seed again. The result is the
// expected one only if op is associative and seed is an identity for op. For
// an empty tree, seed is returned.
func (t Tree[T]) Reduce(op func(T, T) T, seed T) T {
	return t.tree().combine(op, seed)
}

// First returns the first value of t, or Nothing for an empty tree.
func (t Tree[T]) First() maybe.Maybe[T] {
	if m := t.tree().leftmost(); m != nil {
		return maybe.Just(m.leftmost())
	}
	return maybe.Nothing[T]()
}

// Last returns the last value of t, or Nothing for an empty tree.
func (t Tree[T]) Last() maybe.Maybe[T] {
	if m := t.tree().rightmost(); m != nil {
		return maybe.Just(m.rightmost())
	}
	return maybe.Nothing[T]()
}

// Depth returns the number of nested tree levels of t, which is O(log n).
// An empty tree has depth 0.
func (t Tree[T]) Depth() int {
	return t.tree().depth()
}

// String returns a diagnostic rendering of the structure of t, e.g.
//
//     tree([1,2],single((3,4,5)),[6])
//
// The rendering depends on the order of insertions, not only on the values.
func (t Tree[T]) String() string {
	return t.tree().describe()
}

// Prepend is a function version of t.Prepend(value).
func Prepend[T any](t Tree[T], value T) Tree[T] {
	return t.Prepend(value)
}

// Append is a function version of t.Append(value).
func Append[T any](t Tree[T], value T) Tree[T] {
	return t.Append(value)
}

// Fold is a conventional left fold over the values of t: f is called for every value,
// in order, with the result of the previous call (starting with z).
func Fold[T, R any](t Tree[T], f func(R, T) R, z R) R {
	r := z
	for _, v := range t.ToSlice() {
		r = f(r, v)
	}
	return r
}

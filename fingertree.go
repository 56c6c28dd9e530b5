package fingertree

/*
A finger tree is either empty, a single value, or a deep node. A deep node holds a
digit at either end and a middle tree, which contains 2-3 nodes of the next level.
The middle tree uses the same implementation as the top level tree: its values are
nodes instead of leafs, but both satisfy interface `measured`. No operation has to
know the level it is operating at.

All shapes are immutable. Operations creating a new tree re-use untouched parts of
the original (the middle tree, the digit at the other end).
*/

type fingerTree[T any] interface {
	prepend(measured[T]) fingerTree[T]
	append(measured[T]) fingerTree[T]
	count() int
	flatten(buf []T) []T
	combine(op func(T, T) T, seed T) T
	describe() string
	depth() int
	leftmost() measured[T]  // nil for an empty tree
	rightmost() measured[T] // nil for an empty tree
}

// --- Empty -----------------------------------------------------------------

type empty[T any] struct{}

func (e empty[T]) prepend(m measured[T]) fingerTree[T] {
	return single[T]{m}
}

func (e empty[T]) append(m measured[T]) fingerTree[T] {
	return single[T]{m}
}

func (e empty[T]) count() int {
	return 0
}

func (e empty[T]) flatten(buf []T) []T {
	return buf
}

func (e empty[T]) combine(op func(T, T) T, seed T) T {
	return seed
}

func (e empty[T]) describe() string {
	return "<>"
}

func (e empty[T]) depth() int {
	return 0
}

func (e empty[T]) leftmost() measured[T] {
	return nil
}

func (e empty[T]) rightmost() measured[T] {
	return nil
}

// --- Single ----------------------------------------------------------------

type single[T any] struct {
	m measured[T]
}

func (s single[T]) prepend(m measured[T]) fingerTree[T] {
	return deep[T]{left: digitOf(m), middle: empty[T]{}, right: digitOf(s.m)}
}

func (s single[T]) append(m measured[T]) fingerTree[T] {
	return deep[T]{left: digitOf(s.m), middle: empty[T]{}, right: digitOf(m)}
}

func (s single[T]) count() int {
	return s.m.count()
}

func (s single[T]) flatten(buf []T) []T {
	return s.m.flatten(buf)
}

func (s single[T]) combine(op func(T, T) T, seed T) T {
	return op(seed, s.m.combine(op, seed))
}

func (s single[T]) describe() string {
	return "single(" + s.m.describe() + ")"
}

func (s single[T]) depth() int {
	return 1
}

func (s single[T]) leftmost() measured[T] {
	return s.m
}

func (s single[T]) rightmost() measured[T] {
	return s.m
}

// --- Deep ------------------------------------------------------------------

type deep[T any] struct {
	left   digit[T]
	middle fingerTree[T] // holds node2s and node3s
	right  digit[T]
}

// prepend inserts m into the left digit. Only if the left digit overflows, the
// overflowing node3 is prepended to the middle tree, one level down.
func (d deep[T]) prepend(m measured[T]) fingerTree[T] {
	left, overflow, ok := d.left.prepend(m)
	if !ok {
		return deep[T]{left: left, middle: d.middle, right: d.right}
	}
	return deep[T]{left: left, middle: d.middle.prepend(overflow), right: d.right}
}

// append is the mirror operation of prepend, operating on the right digit.
func (d deep[T]) append(m measured[T]) fingerTree[T] {
	right, overflow, ok := d.right.append(m)
	if !ok {
		return deep[T]{left: d.left, middle: d.middle, right: right}
	}
	return deep[T]{left: d.left, middle: d.middle.append(overflow), right: right}
}

func (d deep[T]) count() int {
	return d.left.count() + d.middle.count() + d.right.count()
}

func (d deep[T]) flatten(buf []T) []T {
	return d.right.flatten(d.middle.flatten(d.left.flatten(buf)))
}

// combine reduces each of left, middle and right with the same seed and combines
// the three partial results with op, starting from seed.
func (d deep[T]) combine(op func(T, T) T, seed T) T {
	r := op(seed, d.left.combine(op, seed))
	r = op(r, d.middle.combine(op, seed))
	return op(r, d.right.combine(op, seed))
}

func (d deep[T]) describe() string {
	return "tree(" + d.left.describe() + "," + d.middle.describe() + "," + d.right.describe() + ")"
}

func (d deep[T]) depth() int {
	return 1 + d.middle.depth()
}

func (d deep[T]) leftmost() measured[T] {
	return d.left.first()
}

func (d deep[T]) rightmost() measured[T] {
	return d.right.last()
}

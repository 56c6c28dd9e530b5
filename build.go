package fingertree

// Of creates a tree holding values, in order. This is more efficient than appending
// values one by one, as Of packs the inner values into 2-3 nodes level by level,
// without going through digit overflows.
//
//     seq := fingertree.Of(1, 2, 3, 4, 5)
//
func Of[T any](values ...T) Tree[T] {
	ms := make([]measured[T], len(values))
	for i, v := range values {
		ms[i] = leaf[T]{v}
	}
	return Tree[T]{root: build(ms)}
}

// build creates a finger tree from a slice of values of the same level.
// Up to 8 values are split into two digits; for longer slices, the outer three values
// at either end form the digits and the rest is packed into nodes one level down.
func build[T any](ms []measured[T]) fingerTree[T] {
	n := len(ms)
	switch {
	case n == 0:
		return empty[T]{}
	case n == 1:
		return single[T]{ms[0]}
	case n <= 2*maxDigitLen:
		h := n / 2
		return deep[T]{left: digitOf(ms[:h]...), middle: empty[T]{}, right: digitOf(ms[h:]...)}
	}
	inner := pack(ms[3 : n-3])
	tracer().Debugf("build: packed %d values into %d nodes", n-6, len(inner))
	return deep[T]{
		left:   digitOf(ms[:3]...),
		middle: build(inner),
		right:  digitOf(ms[n-3:]...),
	}
}

// pack groups at least 2 values into node3s, using node2s for a remainder:
// a remainder of 2 becomes a node2, a remainder of 1 is resolved by turning the
// last node3 into two node2s.
func pack[T any](ms []measured[T]) []measured[T] {
	assertThat(len(ms) >= 2, "cannot pack %d values into nodes", len(ms))
	nodes := make([]measured[T], 0, len(ms)/3+1)
	for len(ms) > 0 {
		switch len(ms) {
		case 2:
			nodes = append(nodes, newNode2(ms[0], ms[1]))
			ms = ms[2:]
		case 4:
			nodes = append(nodes, newNode2(ms[0], ms[1]), newNode2(ms[2], ms[3]))
			ms = ms[4:]
		default:
			nodes = append(nodes, newNode3(ms[0], ms[1], ms[2]))
			ms = ms[3:]
		}
	}
	return nodes
}

package fingertree

// digit holds the 1…4 values at either end of a deep tree node. All values of a
// digit live at the same level of nesting. A digit is never empty.
type digit[T any] []measured[T]

const maxDigitLen = 4

func digitOf[T any](ms ...measured[T]) digit[T] {
	assertThat(len(ms) >= 1 && len(ms) <= maxDigitLen, "digit length must be in [1…4], is %d", len(ms))
	return digit[T](ms)
}

func (d digit[T]) full() bool {
	return len(d) == maxDigitLen
}

// prepend returns a copy of d with m inserted at the front.
//
// If d is full, it overflows: the last three values of d are packed into a node3,
// which is returned as overflow, and the new digit holds m and the first value of d.
func (d digit[T]) prepend(m measured[T]) (dd digit[T], overflow measured[T], ok bool) {
	d.assertValid()
	if !d.full() {
		dd = make(digit[T], len(d)+1)
		dd[0] = m
		copy(dd[1:], d)
		return dd, nil, false
	}
	overflow = newNode3(d[1], d[2], d[3])
	tracer().Debugf("digit overflow at front, moving node3 one level down")
	return digitOf(m, d[0]), overflow, true
}

// append returns a copy of d with m inserted at the back. This is the mirror
// operation of prepend: on overflow, the first three values of d are packed into
// a node3 and the new digit holds the last value of d and m.
func (d digit[T]) append(m measured[T]) (dd digit[T], overflow measured[T], ok bool) {
	d.assertValid()
	if !d.full() {
		dd = make(digit[T], len(d), len(d)+1)
		copy(dd, d)
		return append(dd, m), nil, false
	}
	overflow = newNode3(d[0], d[1], d[2])
	tracer().Debugf("digit overflow at back, moving node3 one level down")
	return digitOf(d[3], m), overflow, true
}

func (d digit[T]) count() int {
	n := 0
	for _, m := range d {
		n += m.count()
	}
	return n
}

func (d digit[T]) flatten(buf []T) []T {
	for _, m := range d {
		buf = m.flatten(buf)
	}
	return buf
}

// combine delegates to the single value of a 1-digit. Longer digits wrap each of
// their values in op, as 2-3 nodes do.
func (d digit[T]) combine(op func(T, T) T, seed T) T {
	d.assertValid()
	if len(d) == 1 {
		return d[0].combine(op, seed)
	}
	return combineEach(op, seed, d...)
}

func (d digit[T]) describe() string {
	return describeEach('[', ']', d...)
}

func (d digit[T]) first() measured[T] {
	return d[0]
}

func (d digit[T]) last() measured[T] {
	return d[len(d)-1]
}

func (d digit[T]) assertValid() {
	assertThat(len(d) >= 1 && len(d) <= maxDigitLen, "inconsistency: digit of length %d", len(d))
}

/*
Package fingertree implements an immutable persistent sequence on top of a 2-3 finger tree.

A finger tree keeps up to four elements at either end of the sequence ("digits") and
packs everything in between into groups of two or three, one level deeper. Adding an
element at either end touches the outermost level only, until a digit overflows; then
three of its elements are moved one level down as a single node. This gives amortized
O(1) insertion at both ends, while the nesting depth stays logarithmic in the number of
elements.

Every “modification” of a tree creates a new incarnation, leaving the original unmodified.
Untouched parts of the structure are shared between incarnations, transparently to
clients. Trees are therefore inherently concurrency-safe.

	seq := fingertree.Empty[int]().Append(2).Append(3).Prepend(1)
	seq.ToSlice()                                      // [1 2 3]
	seq.Len()                                          // 3
	seq.Reduce(func(a, b int) int { return a + b }, 0) // 6

Removal of elements, concatenation of trees and indexed access are not supported.

Reduce

Reduce does not thread an accumulator from left to right. It computes the reduction of
each part of the tree independently, using the same seed for every part, and combines
the partial results with op. The result equals a conventional left fold only if op is
associative and seed is an identity element of op (e.g., addition with 0).
Use Fold for a conventional left-to-right fold.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingertree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fingertree: "+msg, msgargs...)
		panic(msg)
	}
}

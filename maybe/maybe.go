/*
Package maybe implements optional values.

Sequences return a Maybe when asked for a value which may not exist, e.g. the first
value of an empty sequence. Clients either ask for the value with a default,

	first := seq.First().WithDefault(0)

or pattern-match on the constructors:

	var v int
	switch m := seq.First().Match(); m {
	case m.Just(&v):
		fmt.Printf("first value is %d\n", v)
	case m.Nothing():
		fmt.Println("sequence is empty")
	}

Matching works for any type of value, including values which are not comparable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Get() (T, bool)
	IsNothing() bool
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return &maybe[T]{value: x, just: true}
}

// Nothing represents the absence of a value of type T.
func Nothing[T any]() Maybe[T] {
	return &maybe[T]{}
}

func (m *maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the value of a Just, and def for Nothing.
func (m *maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Get returns the value of a Just and true, or the zero value of T and false
// for Nothing.
func (m *maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m *maybe[T]) IsNothing() bool {
	return !m.just
}

func (m *maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if present. Map changes the type, as opposed to
// x.Map(…).
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match. Each of its methods returns the matcher itself
// if the Maybe was created by the corresponding constructor, and nil otherwise.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher refers to its Maybe by pointer, so matchers compare by identity and the
// value does not have to be comparable.
type matcher[T any] struct {
	m *maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}

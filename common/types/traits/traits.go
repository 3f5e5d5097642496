// Package traits declares the capability interfaces a CEL value variant may
// implement in addition to ref.Val: Adder, Comparer, Sizer, and so on. The
// runtime package type-switches on these instead of hard-coding which
// variant supports which operator.
package traits

import "github.com/celexpr/celc/common/types/ref"

// Adder is implemented by values supporting the `+` operator.
type Adder interface {
	Add(other ref.Val) ref.Val
}

// Subtractor is implemented by values supporting the `-` operator.
type Subtractor interface {
	Subtract(other ref.Val) ref.Val
}

// Multiplier is implemented by values supporting the `*` operator.
type Multiplier interface {
	Multiply(other ref.Val) ref.Val
}

// Divider is implemented by values supporting the `/` operator.
type Divider interface {
	Divide(other ref.Val) ref.Val
}

// Modder is implemented by values supporting the `%` operator.
type Modder interface {
	Modulo(other ref.Val) ref.Val
}

// Negater is implemented by values supporting unary `-`.
type Negater interface {
	Negate() ref.Val
}

// Comparer is implemented by values supporting `<`, `<=`, `>`, `>=`. It
// returns an Int of -1/0/1, or the error sentinel if other is incomparable.
type Comparer interface {
	Compare(other ref.Val) ref.Val
}

// Sizer is implemented by values supporting size().
type Sizer interface {
	Size() ref.Val
}

// Indexer is implemented by values supporting `v[k]`.
type Indexer interface {
	Get(key ref.Val) ref.Val
}

// Container is implemented by values supporting `k in c`.
type Container interface {
	Contains(elem ref.Val) ref.Val
}

// Iterable is implemented by values that can drive a comprehension's
// iteration (lists and maps).
type Iterable interface {
	Iterator() Iterator
}

// Iterator walks the elements of an Iterable in CEL iteration order.
type Iterator interface {
	HasNext() bool
	Next() ref.Val
}

// FieldTester is implemented by structs to support has(s.f).
type FieldTester interface {
	IsSet(field string) ref.Val
}

// Indexable two-variable iteration support for maps: returns the
// (key, value) pair form used by the two-variable comprehension macros.
type KeyValueIterator interface {
	Iterator
	NextValue() ref.Val
}

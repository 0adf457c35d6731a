// File: pkg/forwardlist/compare.go
package forwardlist

import "cmp"

// Equal reports whether a and b hold the same sequence: same length and
// elementwise-equal values in order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil {
		if x.value != y.value {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	x, y := a.head.next, b.head.next
	for x != nil {
		if !eq(x.value, y.value) {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// Compare orders a and b lexicographically, elementwise: the result is -1 if
// a sorts before b, +1 if after, 0 if the sequences are equal. A proper
// prefix sorts before the longer sequence.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *List[T], compare func(T, T) int) int {
	x, y := a.head.next, b.head.next
	for x != nil && y != nil {
		if c := compare(x.value, y.value); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return 1
	case y != nil:
		return -1
	default:
		return 0
	}
}

// Less reports whether a sorts lexicographically before b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a sorts before b or equals it.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts lexicographically after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a sorts after b or equals it.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}

// File: pkg/forwardlist/forwardlist.go
// Package forwardlist implements a generic singly linked sequence container.
//
// The zero-allocation sentinel ("before begin") node is embedded in the list
// value itself, which gives every list a stable anchor for the
// InsertAfter/EraseAfter splice protocol, including at the front. The list
// owns every cell in its chain; copying a list always allocates a fully
// disjoint chain.
//
// The container is not safe for concurrent use. Mutating a list invalidates
// only cursors that referenced removed cells: insertion never invalidates a
// cursor, and erasure invalidates only cursors on the erased cell.
package forwardlist

// node is one cell of the chain: one owned element value and the link to its
// successor (nil at the end of the chain). The list's sentinel head is a
// node too, with a meaningless value.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence of values of type T.
//
// A List must be created with New, Of or Clone; the methods below assume the
// receiver is non-nil. Front insertion, front removal and splicing after a
// known position are O(1); Len and IsEmpty are O(1).
type List[T any] struct {
	head node[T] // sentinel; head.next is the first real cell
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of builds a list holding the given values in order.
//
// The chain is built into a temporary list and swapped into the result only
// once complete, so a half-built chain is never observable.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	var tmp List[T]
	fill(&tmp, values)
	l.Swap(&tmp)
	return l
}

// fill appends values to tmp in order. tmp must be empty.
func fill[T any](tmp *List[T], values []T) {
	tail := &tmp.head
	for _, v := range values {
		tail.next = &node[T]{value: v}
		tail = tail.next
		tmp.size++
	}
}

// Clone returns a deep copy of l: same values, same order, entirely disjoint
// cells.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	var tmp List[T]
	tail := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
		tmp.size++
	}
	c.Swap(&tmp)
	return c
}

// Assign replaces l's contents with a deep copy of other. The copy is built
// into a temporary list first and exchanged in one step, so l keeps its old
// contents if the copy cannot complete. Self-assignment is a no-op.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
}

// Swap exchanges the contents of l and other in O(1). No element values are
// moved or copied; only the sentinel links and sizes are exchanged.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Len returns the number of elements in the list in O(1).
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements, in O(1).
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element. It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panic("forwardlist: Front on empty list")
	}
	return l.head.next.value
}

// PushFront inserts value as the new first element in O(1). The new cell is
// fully constructed before it is linked, so the list is unchanged if the
// allocation cannot complete.
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PopFront removes the first element in O(1). On an empty list it does
// nothing.
func (l *List[T]) PopFront() {
	if l.head.next == nil {
		return
	}
	first := l.head.next
	l.head.next = first.next
	first.next = nil // unlink so the cell is collectable immediately
	l.size--
}

// Clear removes every element, leaving the list empty. It walks the chain
// and unlinks each cell so no dead cell keeps its tail reachable.
func (l *List[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// InsertAfter splices a new cell holding value immediately after pos and
// returns a cursor to it, in O(1). pos may be BeforeBegin, which makes the
// call equivalent to PushFront. pos must be a dereferenceable cursor of this
// list or its before-begin cursor; passing an end cursor or a cursor from
// another list panics. The new cell is constructed before any link is
// touched, so a failed allocation leaves the list unchanged.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	l.checkAnchor(pos, "InsertAfter")
	n := &node[T]{value: value, next: pos.n.next}
	pos.n.next = n
	l.size++
	return Iterator[T]{list: l, n: n}
}

// EraseAfter removes the cell immediately after pos and returns a cursor to
// the cell that followed it (the end cursor if none), in O(1). pos must be a
// cursor of this list with a successor: erasing after the last cell, after
// an end cursor, or through a foreign cursor panics.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	l.checkAnchor(pos, "EraseAfter")
	victim := pos.n.next
	if victim == nil {
		panic("forwardlist: EraseAfter at position with no successor")
	}
	pos.n.next = victim.next
	victim.next = nil
	l.size--
	return Iterator[T]{list: l, n: pos.n.next}
}

// checkAnchor validates a cursor used as a splice anchor.
func (l *List[T]) checkAnchor(pos Iterator[T], op string) {
	if pos.n == nil {
		panic("forwardlist: " + op + " with end or zero iterator")
	}
	if pos.list != l {
		panic("forwardlist: " + op + " with iterator from another list")
	}
}

// Values returns the sequence as a freshly allocated slice, in order. The
// slice shares nothing with the list.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

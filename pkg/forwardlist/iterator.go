// File: pkg/forwardlist/iterator.go
package forwardlist

// Iterator is a forward-only cursor over a list. It is a small value:
// copy it freely and compare it with ==. Two iterators are equal iff they
// reference the same cell of the same list, or both are end iterators of
// the same list.
//
// An iterator is either positioned on a cell (the before-begin sentinel
// counts as a cell for splicing purposes) or at the end of the chain. The
// zero Iterator is not usable. An iterator does not own the cell it points
// at and must not outlive its list; erasing a cell invalidates iterators on
// that cell only, and insertion invalidates nothing.
type Iterator[T any] struct {
	list *List[T]
	n    *node[T]
}

// Begin returns a cursor on the first element, equal to End if the list is
// empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, n: l.head.next}
}

// End returns the past-the-last cursor. It must not be dereferenced or
// advanced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l}
}

// BeforeBegin returns a cursor on the sentinel preceding the first element.
// It is only useful as an anchor for InsertAfter and EraseAfter; it must not
// be dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{list: l, n: &l.head}
}

// Next returns the cursor advanced by one cell (the end cursor after the
// last cell). It panics on an end or zero iterator.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic("forwardlist: Next on end iterator")
	}
	return Iterator[T]{list: it.list, n: it.n.next}
}

// Value returns the element the cursor is on. It panics on an end,
// before-begin or zero iterator.
func (it Iterator[T]) Value() T {
	it.checkDeref()
	return it.n.value
}

// Ptr returns a pointer to the element the cursor is on, for in-place
// mutation. Same panics as Value.
func (it Iterator[T]) Ptr() *T {
	it.checkDeref()
	return &it.n.value
}

// Set overwrites the element the cursor is on. Same panics as Value.
func (it Iterator[T]) Set(value T) {
	it.checkDeref()
	it.n.value = value
}

// Const converts the cursor to its read-only form. The result references the
// same cell.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{list: it.list, n: it.n}
}

func (it Iterator[T]) checkDeref() {
	if it.n == nil {
		panic("forwardlist: dereference of end iterator")
	}
	if it.list != nil && it.n == &it.list.head {
		panic("forwardlist: dereference of before-begin iterator")
	}
}

// ConstIterator is the read-only counterpart of Iterator: same traversal and
// comparison semantics, no mutating access to the element.
type ConstIterator[T any] struct {
	list *List[T]
	n    *node[T]
}

// CBegin returns a read-only cursor on the first element, equal to CEnd if
// the list is empty.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{list: l, n: l.head.next}
}

// CEnd returns the read-only past-the-last cursor.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{list: l}
}

// CBeforeBegin returns the read-only cursor on the sentinel preceding the
// first element. It must not be dereferenced.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{list: l, n: &l.head}
}

// Next returns the cursor advanced by one cell. It panics on an end or zero
// iterator.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		panic("forwardlist: Next on end iterator")
	}
	return ConstIterator[T]{list: it.list, n: it.n.next}
}

// Value returns the element the cursor is on. It panics on an end,
// before-begin or zero iterator.
func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		panic("forwardlist: dereference of end iterator")
	}
	if it.list != nil && it.n == &it.list.head {
		panic("forwardlist: dereference of before-begin iterator")
	}
	return it.n.value
}

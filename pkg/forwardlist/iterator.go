package forwardlist

// Iterator is a cursor over the chain of a ForwardList. The zero value is an
// end iterator. An iterator obtained before PopFront, Reverse or Clear must
// not be used afterwards.
type Iterator[T any] struct {
	cur *node[T]
}

func (it Iterator[T]) Valid() bool {
	return it.cur != nil
}

func (it Iterator[T]) Value() T {
	if it.cur == nil {
		panic(ErrIteratorEnd)
	}

	return it.cur.value
}

func (it *Iterator[T]) Next() {
	if it.cur == nil {
		panic(ErrIteratorEnd)
	}

	it.cur = it.cur.next
}

// Equal reports whether both iterators point at the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.cur == other.cur
}

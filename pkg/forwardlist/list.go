// Package forwardlist implements a generic singly-linked list with O(1)
// tail insertion, head removal and in-place reversal.
//
// A list is not safe for concurrent use.
package forwardlist

import "iter"

type ForwardList[T any] interface {
	// PushBack appends v after the current tail.
	PushBack(v T)
	// PopFront removes the head. It panics with ErrPopEmpty on an empty list.
	PopFront()
	Size() int
	// Reverse reverses the list in place without allocating.
	Reverse()
	Clear()
	Begin() Iterator[T]
	End() Iterator[T]
	All() iter.Seq[T]
}

type node[T any] struct {
	next  *node[T]
	value T
}

type list[T any] struct {
	first *node[T]
	// last aliases the final node of the chain owned by first.
	last *node[T]
	size int
}

func (l *list[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.first == nil {
		l.first = n
		l.last = n
		l.size = 1

		return
	}

	l.last.next = n
	l.last = n
	l.size++
}

func (l *list[T]) PopFront() {
	if l.first == nil {
		panic(ErrPopEmpty)
	}

	l.first = l.first.next
	if l.first == nil {
		l.last = nil
	}
	l.size--
}

func (l *list[T]) Size() int {
	return l.size
}

func (l *list[T]) Reverse() {
	if l.first == nil || l.first.next == nil {
		return
	}

	l.last = l.first

	var prev *node[T]
	cur := l.first
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}

	l.first = prev
}

func (l *list[T]) Clear() {
	l.first = nil
	l.last = nil
	l.size = 0
}

func (l *list[T]) Begin() Iterator[T] {
	return Iterator[T]{cur: l.first}
}

func (l *list[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *list[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func New[T any]() ForwardList[T] {
	return &list[T]{}
}

// From returns a list holding values in order.
func From[T any](values ...T) ForwardList[T] {
	l := &list[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Package list implements an indexed doubly-linked list of integers.
// Positions are zero-based and counted from the head; an index shifts
// only when elements before it are inserted or removed.
package list

import (
	"errors"
	"iter"
)

// ErrIndexOutOfRange is returned by Remove when the index does not
// address an existing node.
var ErrIndexOutOfRange = errors.New("list: index out of range")

type node struct {
	value int
	prev  *node
	next  *node
}

// List is an ordered sequence of integers addressable by position.
// The zero value is ready to use; New is provided for symmetry with
// the rest of the codebase. A List is not safe for concurrent use.
type List struct {
	head *node
	tail *node
	size int
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// Len reports the number of stored elements.
func (l *List) Len() int {
	return l.size
}

// Insert places value at the given position. Indices at or past the
// current end degrade to an append rather than an error; callers that
// want strict bounds must check Len first. Negative indices are the
// caller's responsibility and behave like 0.
func (l *List) Insert(index, value int) {
	n := &node{value: value}
	l.size++

	if l.head == nil {
		l.head = n
		l.tail = n
		return
	}
	if index <= 0 {
		n.next = l.head
		l.head.prev = n
		l.head = n
		return
	}

	at := l.head
	steps := 0
	for steps < index && at.next != nil {
		at = at.next
		steps++
	}
	if steps < index {
		// Walk ran off the end: clamp to append.
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
		return
	}

	// Splice before the node currently at index. at is never the head
	// here, so at.prev is non-nil.
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}

// Remove unlinks the node at the given position and returns its value.
// An empty list or an index past the last node yields
// ErrIndexOutOfRange and leaves the list unchanged.
func (l *List) Remove(index int) (int, error) {
	n := l.head
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	if n == nil {
		return 0, ErrIndexOutOfRange
	}

	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
	return n.value, nil
}

// All returns a lazy head-to-tail traversal of the stored values. The
// sequence is finite and can be ranged over any number of times; it
// must not be consumed while the list is being mutated.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the stored values as a slice in head-to-tail order.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Reset unlinks every node and returns the list to its empty state.
// The list remains usable afterwards.
func (l *List) Reset() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

package bintree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"iter"
)

// ErrResetNotSupported is returned by every iterator's Reset. Iterators are
// single-pass; clients wanting to traverse a tree again have to create a new one.
var ErrResetNotSupported = errors.New("iterator does not support reset")

// Iterator is the common interface of all tree iterators in this package.
//
// Next must be called before Value, even for the first value.
// If Next returns false, the iterator is exhausted and will never return
// true again; Value will then return the zero value of T.
//
// Typical usage:
//
//	it := bintree.NewInOrderIterator(root)
//	for it.Next() {
//		v := it.Value()
//		…
//	}
type Iterator[T any] interface {
	Next() bool
	Value() T
	Reset() error
}

// Seq adapts an iterator to a Go range-over-func sequence. The sequence
// shares state with it: ranging over it a second time continues where the
// first range stopped.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// cursor holds what all iterators have in common: an explicit stack of
// nodes and the value to be returned by Value.
type cursor[T any] struct {
	stack nodeStack[T]
	value T
}

func (c *cursor[T]) Value() T {
	return c.value
}

func (c *cursor[T]) Reset() error {
	return ErrResetNotSupported
}

func (c *cursor[T]) yield(node *Node[T]) bool {
	c.value = node.Value
	return true
}

func (c *cursor[T]) exhausted() bool {
	var zero T
	c.value = zero
	return false
}

// --- Pre-order -------------------------------------------------------------

type preOrderIterator[T any] struct {
	cursor[T]
}

// NewPreOrderIterator creates an iterator visiting a node, then its left
// subtree, then its right subtree. root may be nil.
func NewPreOrderIterator[T any](root *Node[T]) Iterator[T] {
	it := &preOrderIterator[T]{cursor[T]{stack: newNodeStack[T]()}}
	if root != nil {
		it.stack.push(root)
	}
	tracer().Debugf("new pre-order iterator, root = %v", root)
	return it
}

func (it *preOrderIterator[T]) Next() bool {
	node, ok := it.stack.pop()
	if !ok {
		return it.exhausted()
	}
	// right goes first, so left will be popped first
	if node.Right != nil {
		it.stack.push(node.Right)
	}
	if node.Left != nil {
		it.stack.push(node.Left)
	}
	return it.yield(node)
}

// --- In-order --------------------------------------------------------------

type inOrderIterator[T any] struct {
	cursor[T]
	current *Node[T]
}

// NewInOrderIterator creates an iterator visiting the left subtree of a node,
// then the node, then its right subtree. root may be nil.
func NewInOrderIterator[T any](root *Node[T]) Iterator[T] {
	tracer().Debugf("new in-order iterator, root = %v", root)
	return &inOrderIterator[T]{
		cursor:  cursor[T]{stack: newNodeStack[T]()},
		current: root,
	}
}

func (it *inOrderIterator[T]) Next() bool {
	it.stack.pushLeftSpine(it.current, false)
	node, ok := it.stack.pop()
	if !ok {
		it.current = nil
		return it.exhausted()
	}
	it.current = node.Right
	return it.yield(node)
}

// --- Post-order ------------------------------------------------------------

type postOrderIterator[T any] struct {
	cursor[T]
	current     *Node[T]
	lastVisited *Node[T]
}

// NewPostOrderIterator creates an iterator visiting the left subtree of a node,
// then its right subtree, then the node. root may be nil.
//
// The iterator remembers the node it visited last. A node on top of the stack
// is due as soon as its right subtree either is empty or has just been
// visited completely, which is the case if the right child was visited last.
func NewPostOrderIterator[T any](root *Node[T]) Iterator[T] {
	tracer().Debugf("new post-order iterator, root = %v", root)
	return &postOrderIterator[T]{
		cursor:  cursor[T]{stack: newNodeStack[T]()},
		current: root,
	}
}

func (it *postOrderIterator[T]) Next() bool {
	for {
		it.stack.pushLeftSpine(it.current, false)
		it.current = nil
		top, ok := it.stack.peek()
		if !ok {
			return it.exhausted()
		}
		if top.Right != nil && top.Right != it.lastVisited {
			it.current = top.Right
			continue
		}
		it.stack.pop()
		it.lastVisited = top
		return it.yield(top)
	}
}

// --- Post-order, double push -----------------------------------------------

type postOrderDoublePushIterator[T any] struct {
	cursor[T]
	current *Node[T]
}

// NewPostOrderDoublePushIterator creates an iterator producing the same
// sequence as NewPostOrderIterator, without tracking the last visited node.
//
// Every node is pushed onto the stack twice. When popping a node and finding
// its twin on top of the stack, we see the node for the first time and have
// to descend into its right subtree. Otherwise the twin has been consumed
// before and the node is due.
func NewPostOrderDoublePushIterator[T any](root *Node[T]) Iterator[T] {
	tracer().Debugf("new post-order (double push) iterator, root = %v", root)
	return &postOrderDoublePushIterator[T]{
		cursor:  cursor[T]{stack: newNodeStack[T]()},
		current: root,
	}
}

func (it *postOrderDoublePushIterator[T]) Next() bool {
	for {
		it.stack.pushLeftSpine(it.current, true)
		it.current = nil
		node, ok := it.stack.pop()
		if !ok {
			return it.exhausted()
		}
		if twin, ok := it.stack.peek(); ok && twin == node {
			it.current = node.Right
			continue
		}
		return it.yield(node)
	}
}

package bintree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"iter"
)

// Tree is a binary tree, given by its root node, together with a strategy
// for traversing it. The tree does not copy nodes; changes to the nodes are
// visible to subsequent traversals.
//
// An empty instance is usable as an empty tree with pre-order traversal,
// i.e. this is legal:
//
//	var tree bintree.Tree[int]
//	for v := range tree.All() { … } // never entered
type Tree[T any] struct {
	root     *Node[T]
	strategy Strategy[T]
}

// New creates a tree for a root node, with options if you need any.
// root may be nil, resulting in an empty tree.
// Use it like this:
//
//	tree := bintree.New(root, bintree.Traversal(bintree.InOrder[int]))
//
// Without a Traversal option, trees are traversed in pre-order.
func New[T any](root *Node[T], opts ...Option[T]) *Tree[T] {
	tree := &Tree[T]{root: root}
	for _, option := range opts {
		option(tree)
	}
	tracer().Debugf("new binary tree, root = %v", root)
	return tree
}

// Option is a type to help initializing trees at creation time.
type Option[T any] func(*Tree[T])

// Traversal is an option to set the strategy for traversing a tree.
// A nil strategy selects pre-order.
func Traversal[T any](strategy Strategy[T]) Option[T] {
	return func(tree *Tree[T]) {
		tree.strategy = strategy
	}
}

// Root returns the root node of the tree, which is nil for empty trees.
func (tree *Tree[T]) Root() *Node[T] {
	if tree == nil {
		return nil
	}
	return tree.root
}

// IsEmpty is true for a tree without a root node.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.Root() == nil
}

// Iterator returns a fresh single-pass iterator, as produced by the tree's
// traversal strategy.
func (tree *Tree[T]) Iterator() Iterator[T] {
	if tree == nil || tree.strategy == nil {
		return PreOrder(tree.Root())
	}
	return tree.strategy(tree.root)
}

// All returns the values of the tree in the order of the tree's traversal
// strategy. Every range over the sequence starts a new traversal.
func (tree *Tree[T]) All() iter.Seq[T] {
	return tree.traverse(tree.Iterator)
}

// Values collects the values of the tree in traversal order into a slice.
func (tree *Tree[T]) Values() []T {
	values := []T{}
	for v := range tree.All() {
		values = append(values, v)
	}
	return values
}

// PreOrder returns the values of the tree in pre-order, regardless of the
// tree's traversal strategy.
func (tree *Tree[T]) PreOrder() iter.Seq[T] {
	return tree.traverse(func() Iterator[T] { return PreOrder(tree.Root()) })
}

// InOrder returns the values of the tree in in-order, regardless of the
// tree's traversal strategy.
func (tree *Tree[T]) InOrder() iter.Seq[T] {
	return tree.traverse(func() Iterator[T] { return InOrder(tree.Root()) })
}

// PostOrder returns the values of the tree in post-order, regardless of the
// tree's traversal strategy.
func (tree *Tree[T]) PostOrder() iter.Seq[T] {
	return tree.traverse(func() Iterator[T] { return PostOrder(tree.Root()) })
}

func (tree *Tree[T]) traverse(start func() Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range Seq(start()) {
			if !yield(v) {
				return
			}
		}
	}
}

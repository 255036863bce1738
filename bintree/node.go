package bintree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

/*
We manage a tree of mutable nodes. Each node carries a value of type parameter T
and owns at most two children. There are no parent links; a node is reachable
from exactly one parent or is the root.
*/

// Node is the base type our trees are built of.
type Node[T any] struct {
	Value T        // nodes carry a value of arbitrary type
	Left  *Node[T] // left child, may be nil
	Right *Node[T] // right child, may be nil
}

// NewNode creates a new leaf node with a given value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// WithChildren sets both children of a node, replacing existing ones.
// Either child may be nil.
// It returns the node to allow for chaining.
func (node *Node[T]) WithChildren(left, right *Node[T]) *Node[T] {
	node.Left = left
	node.Right = right
	return node
}

// IsLeaf is true if node has neither a left nor a right child.
func (node *Node[T]) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

func (node *Node[T]) String() string {
	if node == nil {
		return "(Node nil)"
	}
	return fmt.Sprintf("(Node %v)", node.Value)
}

// --- Arithmetic on node values ---------------------------------------------

// Number is a constraint for node values which may be incremented and
// decremented.
type Number interface {
	constraints.Integer | constraints.Float
}

// Inc replaces the value of node by its successor, value+1.
// Inc on a nil node does nothing and returns nil.
func Inc[T Number](node *Node[T]) *Node[T] {
	if node != nil {
		node.Value++
	}
	return node
}

// Dec replaces the value of node by its predecessor, value-1.
// Dec on a nil node does nothing and returns nil.
func Dec[T Number](node *Node[T]) *Node[T] {
	if node != nil {
		node.Value--
	}
	return node
}

package bintree

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// nodeStack is a typed view onto an array-backed stack of untyped values.
type nodeStack[T any] struct {
	stack *arraystack.Stack
}

func newNodeStack[T any]() nodeStack[T] {
	return nodeStack[T]{stack: arraystack.New()}
}

func (s nodeStack[T]) push(node *Node[T]) {
	s.stack.Push(node)
}

func (s nodeStack[T]) pop() (*Node[T], bool) {
	v, ok := s.stack.Pop()
	if !ok {
		return nil, false
	}
	return asNode[T](v), true
}

func (s nodeStack[T]) peek() (*Node[T], bool) {
	v, ok := s.stack.Peek()
	if !ok {
		return nil, false
	}
	return asNode[T](v), true
}

// pushLeftSpine pushes node and all of its left descendents; the left-most
// one ends up on top. If twice is set, every node is pushed two times in a row.
func (s nodeStack[T]) pushLeftSpine(node *Node[T], twice bool) {
	for node != nil {
		s.push(node)
		if twice {
			s.push(node)
		}
		node = node.Left
	}
}

func asNode[T any](v interface{}) *Node[T] {
	node, ok := v.(*Node[T])
	assertThat(ok, "stack holds a non-node %v", v)
	return node
}

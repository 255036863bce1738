package bintree

// InOrderClosure returns the values of the (sub-)tree starting at root in
// in-order. Other than the iterators of this package it works recursively
// and collects all the values before returning.
//
// For an empty tree the result is an empty slice.
func InOrderClosure[T any](root *Node[T]) []T {
	result := []T{}
	if root == nil {
		return result
	}
	var traverse func(*Node[T])
	traverse = func(node *Node[T]) {
		if node.Left != nil {
			traverse(node.Left)
		}
		result = append(result, node.Value)
		if node.Right != nil {
			traverse(node.Right)
		}
	}
	traverse(root)
	return result
}

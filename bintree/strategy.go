package bintree

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy is a function type producing an iterator for the (sub-)tree
// starting at root. Strategies must not keep state between calls; every call
// returns a fresh iterator.
//
// The iterator constructors of this package are strategies, so this is legal:
//
//	tree := bintree.New(root, bintree.Traversal(bintree.InOrder[int]))
type Strategy[T any] func(root *Node[T]) Iterator[T]

// PreOrder is a strategy for visiting node, left, right.
func PreOrder[T any](root *Node[T]) Iterator[T] {
	return NewPreOrderIterator(root)
}

// InOrder is a strategy for visiting left, node, right.
func InOrder[T any](root *Node[T]) Iterator[T] {
	return NewInOrderIterator(root)
}

// PostOrder is a strategy for visiting left, right, node.
func PostOrder[T any](root *Node[T]) Iterator[T] {
	return NewPostOrderIterator(root)
}

// PostOrderDoublePush is a strategy for visiting left, right, node,
// equivalent in output to PostOrder.
func PostOrderDoublePush[T any](root *Node[T]) Iterator[T] {
	return NewPostOrderDoublePushIterator(root)
}

// --- Naming strategies -----------------------------------------------------

// ErrUnknownOrder is returned by ParseOrder for names not denoting a traversal order.
var ErrUnknownOrder = errors.New("unknown traversal order")

// Order names one of the traversal strategies of this package.
type Order int8

// Traversal orders, see the strategies of the same name.
const (
	OrderPre Order = iota
	OrderIn
	OrderPost
	OrderPostDoublePush
)

var orderNames = map[Order]string{
	OrderPre:            "pre",
	OrderIn:             "in",
	OrderPost:           "post",
	OrderPostDoublePush: "post2",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// ParseOrder returns the order for a name as returned by Order.String.
// Case is ignored.
func ParseOrder(name string) (Order, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for o, n := range orderNames {
		if n == name {
			return o, nil
		}
	}
	return OrderPre, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// StrategyFor returns the strategy for an order. Invalid orders default to
// pre-order.
func StrategyFor[T any](o Order) Strategy[T] {
	switch o {
	case OrderIn:
		return InOrder[T]
	case OrderPost:
		return PostOrder[T]
	case OrderPostDoublePush:
		return PostOrderDoublePush[T]
	}
	return PreOrder[T]
}

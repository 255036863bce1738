/*
Package bintree implements binary trees with pluggable traversal strategies.

Nodes own up to two children and carry a value of type parameter T. Trees
do not hard-wire an order of visiting their nodes. Instead, a tree is
handed a traversal strategy at creation time, which produces an iterator
for the tree's root:

	root := bintree.NewNode(1).WithChildren(bintree.NewNode(2), bintree.NewNode(3))
	tree := bintree.New(root, bintree.Traversal(bintree.PostOrder[int]))
	for v := range tree.All() {
		fmt.Println(v) // 2 3 1
	}

All traversals are iterative, using an explicit stack instead of recursion.
Post-order comes in two flavours, one tracking the last visited node and one
pushing every node twice. Both yield identical sequences. InOrderClosure is
a recursive counterpart for in-order traversal, returning a slice.

Iterators are single-pass. Resetting an iterator is not supported and will
always return ErrResetNotSupported. Ranging over Tree.All twice, however,
creates a fresh iterator each time.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bintree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bintrav.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("bintrav.bintree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bintrav.bintree: "+msg, msgargs...)
		panic(msg)
	}
}

// bintrav demonstrates traversing a small binary tree with different strategies.
//
// Usage:
//
//	bintrav [--no-wait] [--dump] [--order=<pre|in|post|post2>]
//
// The tree is built as
//
//	     1
//	   /   \
//	  2     3
//	 / \
//	4   5
//
// bintrav increments node 4, prints the tree in pre-order, decrements node 3
// and prints the tree in post-order. Then it waits for a key press.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bintrav.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("bintrav.cmd")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

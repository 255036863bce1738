package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/bintrav/bintree"
)

type demoOptions struct {
	wait  bool           // wait for a key press before returning
	dump  bool           // print the tree shape first
	extra *bintree.Order // traverse once more with this order, if set
}

// buildDemoTree creates the tree of the demonstration and returns its root.
func buildDemoTree() *bintree.Node[int] {
	root := bintree.NewNode(1)
	root.Left = bintree.NewNode(2)
	root.Right = bintree.NewNode(3)
	root.Left.Left = bintree.NewNode(4)
	root.Left.Right = bintree.NewNode(5)
	return root
}

func runDemo(out io.Writer, in io.Reader, opts demoOptions) error {
	root := buildDemoTree()
	tree := bintree.New(root)
	if opts.dump {
		if _, err := fmt.Fprint(out, bintree.Dump(root)); err != nil {
			return err
		}
	}
	tracer().Debugf("increment %v", root.Left.Left)
	bintree.Inc(root.Left.Left)
	if err := printTraversal(out, "Pre-order traversal:", tree.PreOrder()); err != nil {
		return err
	}
	tracer().Debugf("decrement %v", root.Right)
	bintree.Dec(root.Right)
	if err := printTraversal(out, "Post-order traversal:", tree.PostOrder()); err != nil {
		return err
	}
	if opts.extra != nil {
		strategy := bintree.StrategyFor[int](*opts.extra)
		title := fmt.Sprintf("Traversal with strategy %q:", opts.extra.String())
		if err := printTraversal(out, title, bintree.New(root, bintree.Traversal(strategy)).All()); err != nil {
			return err
		}
	}
	if opts.wait {
		waitForKey(in)
	}
	return nil
}

func printTraversal(out io.Writer, title string, values iter.Seq[int]) error {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	sep := ""
	for v := range values {
		fmt.Fprintf(&b, "%s%d", sep, v)
		sep = " "
	}
	b.WriteByte('\n')
	_, err := io.WriteString(out, b.String())
	return err
}

// waitForKey blocks until a byte is readable from in or in is at EOF.
func waitForKey(in io.Reader) {
	if _, err := bufio.NewReader(in).ReadByte(); err != nil && err != io.EOF {
		tracer().Errorf("waiting for key press: %v", err)
	}
}

package main

import (
	"github.com/npillmayer/bintrav/bintree"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// newRootCmd creates the bintrav command. Flag values live in the closure,
// so every command instance starts from the defaults.
func newRootCmd() *cobra.Command {
	var (
		noWait   bool
		dumpTree bool
		order    string
	)
	cmd := &cobra.Command{
		Use:   "bintrav",
		Short: "Traverse a small binary tree in pre-, in- and post-order",
		Long: "bintrav builds a five-node binary tree, mutates two of its nodes and\n" +
			"prints the node values in pre-order and post-order.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := demoOptions{
				wait: !noWait,
				dump: dumpTree,
			}
			if order != "" {
				o, err := bintree.ParseOrder(order)
				if err != nil {
					return err
				}
				opts.extra = &o
			}
			return runDemo(cmd.OutOrStdout(), cmd.InOrStdin(), opts)
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Exit without waiting for a key press")
	cmd.Flags().BoolVar(&dumpTree, "dump", false, "Print the shape of the tree before traversing it")
	cmd.Flags().StringVar(&order, "order", "", "Additionally traverse the mutated tree in this order (pre, in, post, post2)")
	return cmd
}

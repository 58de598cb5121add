package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd assembles the wfcgen command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wfcgen",
		Short: "Generate tile maps with wave function collapse",
	}
	root.AddCommand(newGenerateCmd())

	return root
}

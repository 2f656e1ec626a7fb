package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {

	root := &cobra.Command{
		Use:           "posemap",
		Short:         "Pose heatmap post processing",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newPredictCmd(), newInspectCmd())

	return root
}

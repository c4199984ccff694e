package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
)

var nextPadded bool

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the number the next post will get",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService(loadConfig(cmd))

		n, err := svc.NextNumber(cmd.Context())
		if err != nil {
			fatal("Failed to compute next number", err)
		}

		if nextPadded {
			fmt.Println(core.FormatNumber(n))
			return
		}
		fmt.Println(n)
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	nextCmd.Flags().BoolVar(&nextPadded, "padded", false, "Print the zero-padded form used in filenames")
}

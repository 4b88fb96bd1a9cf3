package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	canvas "github.com/SharanyaR1/Code-Canvas"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the codecanvas version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("codecanvas version %s\n", strings.TrimSpace(canvas.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

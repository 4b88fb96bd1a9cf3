package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	removeFile string
	removeLine int
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Delete the note at a line",
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		if err := service.Remove(context.Background(), removeFile, removeLine); err != nil {
			fatal("Failed to remove note", err)
		}

		fmt.Printf("Note removed at %s:%d\n", removeFile, removeLine)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().StringVar(&removeFile, "file", "", "Annotated file (absolute path)")
	removeCmd.Flags().IntVar(&removeLine, "line", 0, "Zero-based line number")
	removeCmd.MarkFlagRequired("file")
	removeCmd.MarkFlagRequired("line")
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

var (
	editFile string
	editLine int
	editText string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Rewrite the note at a line",
	Long: `Rewrite the text of the note at (file, line). The existing text is shown
before prompting. Passing --text "" clears the text while keeping the note;
an empty interactive input cancels instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		ctx := context.Background()

		existing := ""
		if a, err := service.Note(ctx, editFile, editLine); err == nil {
			existing = a.Text
		} else if !errors.Is(err, core.ErrAnnotationNotFound) {
			fatal("Failed to read note", err)
		}

		text := editText
		if !cmd.Flags().Changed("text") {
			text = promptNote("New note: ", existing)
			if text == "" {
				fmt.Println("Cancelled, nothing changed.")
				return
			}
		}

		if err := service.Annotate(ctx, editFile, editLine, text); err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note updated at %s:%d\n", editFile, editLine)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editFile, "file", "", "Annotated file (absolute path)")
	editCmd.Flags().IntVar(&editLine, "line", 0, "Zero-based line number")
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "New note text (skips the prompt)")
	editCmd.MarkFlagRequired("file")
	editCmd.MarkFlagRequired("line")
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addFile string
	addLine int
	addText string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Attach a note to a line of a file",
	Long: `Attach free text to (file, line). Adding to a line that already has a
note overwrites it (last write wins). Without --text, the note is read
interactively; an empty input cancels the command.`,
	Run: func(cmd *cobra.Command, args []string) {
		text := addText
		if !cmd.Flags().Changed("text") {
			text = promptNote("Note: ", "")
		}
		if text == "" {
			fmt.Println("Cancelled, nothing saved.")
			return
		}

		service := openService()
		if err := service.Annotate(context.Background(), addFile, addLine, text); err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note added at %s:%d\n", addFile, addLine)
	},
}

// promptNote reads a single line from stdin, showing any existing text first.
func promptNote(prompt, existing string) string {
	if existing != "" {
		fmt.Printf("Current note: %s\n", existing)
	}
	fmt.Print(prompt)

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addFile, "file", "", "File to annotate (absolute path)")
	addCmd.Flags().IntVar(&addLine, "line", 0, "Zero-based line number")
	addCmd.Flags().StringVarP(&addText, "text", "t", "", "Note text (skips the prompt)")
	addCmd.MarkFlagRequired("file")
	addCmd.MarkFlagRequired("line")
}

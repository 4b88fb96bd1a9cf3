package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	lsp "github.com/tliron/glsp/protocol_3_16"

	"github.com/SharanyaR1/Code-Canvas/pkg/render"
)

var (
	showFile string
	showLine int
	showIcon string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the hover preview for a line",
	Long: `Print the hover markdown an editor would display for the note at
(file, line). Exits silently when the line has no note.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		annotations, err := service.ForFile(context.Background(), showFile)
		if err != nil {
			fatal("Failed to read notes", err)
		}

		renderer := render.New(showIcon)
		hover, ok := renderer.HoverAt(annotations, showFile, showLine)
		if !ok {
			return
		}

		content, ok := hover.Contents.(lsp.MarkupContent)
		if !ok {
			fatal("Unexpected hover content", fmt.Errorf("got %T", hover.Contents))
		}
		fmt.Println(content.Value)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFile, "file", "", "Annotated file (absolute path)")
	showCmd.Flags().IntVar(&showLine, "line", 0, "Zero-based line number")
	showCmd.Flags().StringVar(&showIcon, "icon", render.DefaultIcon, "Gutter icon used in the preview")
	showCmd.MarkFlagRequired("file")
	showCmd.MarkFlagRequired("line")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SharanyaR1/Code-Canvas/pkg/render"
)

var (
	renderFile  string
	renderLines int
	renderIcon  string
	renderJSON  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compute the decoration set for a file",
	Long: `Compute the gutter decorations a host editor would place for a file,
given its current line count. Notes past the end of the file are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		annotations, err := service.ForFile(context.Background(), renderFile)
		if err != nil {
			fatal("Failed to read notes", err)
		}

		renderer := render.New(renderIcon)
		decorations := renderer.Compute(annotations, renderFile, renderLines)

		if renderJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(decorations); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(decorations) == 0 {
			fmt.Println(dimStyle.Render("No decorations."))
			return
		}

		for _, d := range decorations {
			location := fmt.Sprintf("%s:%d", renderFile, d.Line)
			fmt.Printf("%s  %s %s\n", locationStyle.Render(location), renderer.Icon, noteStyle.Render(d.Text))
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderFile, "file", "", "File to render decorations for (absolute path)")
	renderCmd.Flags().IntVar(&renderLines, "lines", 0, "Line count of the file")
	renderCmd.Flags().StringVar(&renderIcon, "icon", render.DefaultIcon, "Gutter icon")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Output in JSON format")
	renderCmd.MarkFlagRequired("file")
	renderCmd.MarkFlagRequired("lines")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

var (
	listFile string
	listJSON bool
)

var (
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List all notes, or only those attached to one file with --file.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()
		ctx := context.Background()

		var annotations []core.Annotation
		var err error
		if listFile != "" {
			annotations, err = service.ForFile(ctx, listFile)
		} else {
			annotations, err = service.List(ctx)
		}
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(annotations); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(annotations) == 0 {
			fmt.Println(dimStyle.Render("No notes."))
			return
		}

		for _, a := range annotations {
			location := fmt.Sprintf("%s:%d", a.Path, a.Line)
			fmt.Printf("%s  %s\n", locationStyle.Render(location), noteStyle.Render(a.Text))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFile, "file", "", "Only notes for this file")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

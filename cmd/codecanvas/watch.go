package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream note changes until interrupted",
	Long: `Follow the notes file and print an event for every change, whether made
through this process or by another editor writing the same file.
Stop with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		fmt.Println("Watching for note changes. Press Ctrl+C to stop.")
		for e := range events {
			fmt.Println(e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

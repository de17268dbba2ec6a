package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chitralaya/chitralaya/internal/server"
	"github.com/chitralaya/chitralaya/pkg/logger"
	"github.com/chitralaya/chitralaya/pkg/queue"
	"github.com/chitralaya/chitralaya/pkg/schedule"
)

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "queue:work",
			Short: "Run the background job worker",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if _, err := server.Bootstrap(ctx); err != nil {
					return err
				}

				logger.Info("queue worker started")
				queue.Work(ctx)
				return queue.Close()
			},
		},
		&cobra.Command{
			Use:   "schedule:run",
			Short: "Run the task scheduler",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if _, err := server.Bootstrap(ctx); err != nil {
					return err
				}

				logger.Info("scheduler started")
				schedule.Run(ctx)
				return nil
			},
		},
		&cobra.Command{
			Use:   "route:list",
			Short: "Print every named route",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := server.Bootstrap(cmd.Context())
				if err != nil {
					return err
				}

				for _, route := range app.Router.Routes() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-45s %s\n", route.Method, route.Path, route.Name)
				}
				return nil
			},
		},
	)
}

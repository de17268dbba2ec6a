package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/chitralaya/chitralaya/internal/server"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with the queue worker and scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := server.Bootstrap(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	})
}

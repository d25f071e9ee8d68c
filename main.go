package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"conversationLogger/cmd/app"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "convlog",
		Short:         "Collect, query and maintain chatbot conversation logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := os.Setenv("CONFIG_PATH", path); err != nil {
					return err
				}
			}
			app.GetApp().Init(cmd.Context())
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (or the directory holding it)")

	rootCmd.AddCommand(
		serveCmd(),
		fetchCmd(),
		flushCmd(),
		analyticsCmd(),
	)
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the conversation log API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.GetApp().LetsGo()
		},
	}
}

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all conversation logs from the remote API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, _ := cmd.Flags().GetString("url")
			typed, _ := cmd.Flags().GetBool("typed")
			return app.GetApp().Fetch(cmd.OutOrStdout(), url, typed)
		},
	}
	cmd.Flags().String("url", "", "Override the configured endpoint URL")
	cmd.Flags().Bool("typed", false, "Decode entries and fail on any error instead of printing []")
	return cmd
}

func flushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flush",
		Short: "Delete every stored conversation log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, _ := cmd.Flags().GetBool("archive")
			return app.GetApp().Flush(cmd.OutOrStdout(), archive)
		},
	}
	cmd.Flags().Bool("archive", false, "Upload a JSON snapshot to object storage before deleting")
	return cmd
}

func analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Print every stored conversation log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.GetApp().Analytics(cmd.OutOrStdout())
		},
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/config"
	"github.com/promptlab-io/labhub/internal/logging"
	"github.com/promptlab-io/labhub/internal/tokens"
)

var rootCmd = &cobra.Command{
	Use:   "labctl",
	Short: "Prompt-lab console CLI (sessions, prompts, exports)",
}

func main() {
	rootCmd.PersistentFlags().String("api-base-url", "", "Backend API base URL")
	rootCmd.PersistentFlags().String("api-token", "", "Backend API token")
	rootCmd.PersistentFlags().String("postgres-url", "", "Snapshot cache Postgres URL")
	rootCmd.PersistentFlags().String("export-format", "", "Export format (json or yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	config.Init(rootCmd)
	tokens.Configure(config.TokenizerModel())

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(labsCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(tokensCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("labctl: %v", err)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()
	return ctx, cancel
}

func newAPIClient() *api.Client {
	timeout, err := time.ParseDuration(config.APICallTimeout())
	if err != nil {
		timeout = 30 * time.Second
	}
	return api.NewClient(config.APIBaseURL(), config.APIToken(), timeout,
		logging.New(logging.ForLevel(config.LogLevel()).WithName("api")))
}

func useColor(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	return config.ColorOutput()
}

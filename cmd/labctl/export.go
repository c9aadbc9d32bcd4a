package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptlab-io/labhub/internal/config"
	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/export"
	"github.com/promptlab-io/labhub/internal/logging"
	"github.com/promptlab-io/labhub/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions or prompt history to a file",
}

var exportSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Export all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		sessions, err := newAPIClient().ListSessions(ctx)
		if err != nil {
			return err
		}
		return exportToFile(cmd, "sessions", sessions)
	},
}

var exportHistoryCmd = &cobra.Command{
	Use:   "history <lab-id>",
	Short: "Export the diff-annotated prompt history of a lab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		versions, err := newAPIClient().ListPromptVersions(ctx, args[0])
		if err != nil {
			return err
		}
		return exportToFile(cmd, "history-"+args[0], export.BuildPromptHistory(args[0], versions))
	},
}

var exportCasesCmd = &cobra.Command{
	Use:   "cases <run-id>",
	Short: "Export the dataset cases of an evaluation run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		cases, err := newAPIClient().ListCases(ctx, args[0])
		if err != nil {
			return err
		}
		return exportToFile(cmd, "cases-"+args[0], cases)
	},
}

func exportToFile(cmd *cobra.Command, stem string, payload any) error {
	format, err := export.ParseFormat(config.ExportFormat())
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(config.ExportDir(), fmt.Sprintf("%s.%s", stem, format))
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := export.Write(file, format, payload); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", out)
	return nil
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Sync sessions and prompt versions into the local cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := snapshot.LoadConfig()
		if err != nil {
			return err
		}
		if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
			cfg.Mode = mode
		}

		database, err := db.NewDatabase(db.Config{DSN: cfg.PostgresURL})
		if err != nil {
			return err
		}
		defer database.Close()

		ctx, cancel := signalContext()
		defer cancel()

		if err := database.Ping(ctx); err != nil {
			return fmt.Errorf("snapshot cache unreachable: %w", err)
		}

		recreate, _ := cmd.Flags().GetBool("recreate")
		if cfg.AutoMigrate || recreate {
			if err := database.Bootstrap(ctx, recreate); err != nil {
				return err
			}
		}

		service := snapshot.NewService(cfg, db.NewSnapshotRepository(database), newAPIClient(),
			logging.New(logging.ForLevel(config.LogLevel()).WithName("snapshot")))
		return service.Run(ctx)
	},
}

func init() {
	exportSessionsCmd.Flags().String("out", "", "Output file path")
	exportHistoryCmd.Flags().String("out", "", "Output file path")
	exportCasesCmd.Flags().String("out", "", "Output file path")
	snapshotCmd.Flags().String("mode", "", "Snapshot mode (FULL, SESSIONS, or PRUNE)")
	snapshotCmd.Flags().Bool("recreate", false, "Drop and recreate the cache tables first")

	exportCmd.AddCommand(exportSessionsCmd)
	exportCmd.AddCommand(exportHistoryCmd)
	exportCmd.AddCommand(exportCasesCmd)
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/promptlab-io/labhub/internal/config"
	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/export"
	"github.com/promptlab-io/labhub/internal/logging"
	"github.com/promptlab-io/labhub/internal/render"
	"github.com/promptlab-io/labhub/internal/textdiff"
	"github.com/promptlab-io/labhub/internal/tokens"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Inspect prompt version history",
}

var promptsHistoryCmd = &cobra.Command{
	Use:   "history <lab-id>",
	Short: "List prompt versions with per-version diffs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		versions, err := newAPIClient().ListPromptVersions(ctx, args[0])
		if err != nil {
			return err
		}
		return writeOutput(export.BuildPromptHistory(args[0], versions))
	},
}

var promptsDiffCmd = &cobra.Command{
	Use:   "diff <lab-id> <old-version> <new-version>",
	Short: "Diff two prompt versions of a lab",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		labID := args[0]
		oldVersion, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("old version must be a number: %w", err)
		}
		newVersion, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("new version must be a number: %w", err)
		}

		oldText, newText, err := loadVersionPair(ctx, labID, oldVersion, newVersion)
		if err != nil {
			return err
		}

		lines := textdiff.Generate(oldText, newText)
		render.Diff(os.Stdout, lines, useColor(cmd))
		render.DiffSummary(os.Stdout, textdiff.Summarize(lines))
		return nil
	},
}

// loadVersionPair prefers the snapshot cache and falls back to the backend
// when no cache DSN is configured or a version is missing locally.
func loadVersionPair(ctx context.Context, labID string, oldVersion, newVersion int) (string, string, error) {
	if dsn := config.PostgresURL(); dsn != "" {
		database, err := db.NewDatabase(db.Config{DSN: dsn})
		if err == nil {
			defer database.Close()
			repo := db.NewSnapshotRepository(database)
			oldRecord, oldErr := repo.GetVersion(ctx, labID, oldVersion)
			newRecord, newErr := repo.GetVersion(ctx, labID, newVersion)
			if oldErr == nil && newErr == nil && oldRecord != nil && newRecord != nil {
				return oldRecord.Content, newRecord.Content, nil
			}
		}
	}

	client := newAPIClient()
	oldPV, err := client.GetPromptVersion(ctx, labID, oldVersion)
	if err != nil {
		return "", "", err
	}
	newPV, err := client.GetPromptVersion(ctx, labID, newVersion)
	if err != nil {
		return "", "", err
	}
	return oldPV.Content, newPV.Content, nil
}

var promptsPushCmd = &cobra.Command{
	Use:   "push <lab-id> <prompt-file>",
	Short: "Submit a new prompt version, showing the diff against the latest cached one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		labID := args[0]
		content, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read prompt file: %w", err)
		}

		client := newAPIClient()
		if _, err := client.GetLab(ctx, labID); err != nil {
			return err
		}

		if dsn := config.PostgresURL(); dsn != "" {
			if database, dbErr := db.NewDatabase(db.Config{DSN: dsn}); dbErr == nil {
				defer database.Close()
				latest, lvErr := db.NewSnapshotRepository(database).LatestVersion(ctx, labID)
				if lvErr == nil && latest != nil {
					lines := textdiff.Generate(latest.Content, string(content))
					render.Diff(os.Stdout, lines, useColor(cmd))
					render.DiffSummary(os.Stdout, textdiff.Summarize(lines))
				}
			}
		}

		version, err := client.CreatePromptVersion(ctx, labID, string(content))
		if err != nil {
			return err
		}
		return writeOutput(version)
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Inspect evaluation runs",
}

var evalRunsCmd = &cobra.Command{
	Use:   "runs <lab-id>",
	Short: "List evaluation runs of a lab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		runs, err := newAPIClient().ListEvalRuns(ctx, args[0])
		if err != nil {
			return err
		}
		return writeOutput(runs)
	},
}

var evalCasesCmd = &cobra.Command{
	Use:   "cases <run-id>",
	Short: "List dataset cases of a run",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		if len(args) != 1 {
			return fmt.Errorf("run id is required")
		}
		cases, err := newAPIClient().ListCases(ctx, args[0])
		if err != nil {
			return err
		}
		return writeOutput(cases)
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <lab-id>",
	Short: "Show the learning curve of a lab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		points, err := newAPIClient().GetProgress(ctx, args[0])
		if err != nil {
			return err
		}
		return writeOutput(points)
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Estimate token usage and context fit for a prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read prompt file: %w", err)
			}
			text = string(content)
		} else {
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(content)
		}

		contextTokens, _ := cmd.Flags().GetInt("context")
		if contextTokens <= 0 {
			contextTokens = config.ContextTokens()
		}
		report := tokens.SplitForBudget(text, contextTokens,
			logging.New(logging.ForLevel(config.LogLevel()).WithName("tokens")))
		return writeOutput(report)
	},
}

func init() {
	tokensCmd.Flags().Int("context", 0, "Context window size in tokens")

	promptsCmd.AddCommand(promptsHistoryCmd)
	promptsCmd.AddCommand(promptsDiffCmd)
	promptsCmd.AddCommand(promptsPushCmd)
	evalCmd.AddCommand(evalRunsCmd)
	evalCmd.AddCommand(evalCasesCmd)
}

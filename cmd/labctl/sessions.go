package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/config"
	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/export"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage prompt-lab sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		if cached, _ := cmd.Flags().GetBool("cached"); cached {
			repo, closeDB, err := openSnapshotRepo()
			if err != nil {
				return err
			}
			defer closeDB()
			sessions, err := repo.ListSessions(ctx)
			if err != nil {
				return err
			}
			return writeOutput(sessions)
		}

		sessions, err := newAPIClient().ListSessions(ctx)
		if err != nil {
			return err
		}
		return writeOutput(sessions)
	},
}

var sessionsGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Show one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		if cached, _ := cmd.Flags().GetBool("cached"); cached {
			repo, closeDB, err := openSnapshotRepo()
			if err != nil {
				return err
			}
			defer closeDB()
			snapshot, err := repo.GetSession(ctx, args[0])
			if err != nil {
				return err
			}
			if snapshot == nil {
				return fmt.Errorf("session %s not in the local cache", args[0])
			}
			return writeOutput(snapshot)
		}

		session, err := newAPIClient().GetSession(ctx, args[0])
		if err != nil {
			return err
		}
		return writeOutput(session)
	},
}

func openSnapshotRepo() (*db.SnapshotRepository, func(), error) {
	dsn := config.PostgresURL()
	if dsn == "" {
		return nil, nil, fmt.Errorf("postgres_url is not configured")
	}
	database, err := db.NewDatabase(db.Config{DSN: dsn})
	if err != nil {
		return nil, nil, err
	}
	return db.NewSnapshotRepository(database), func() { _ = database.Close() }, nil
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		description, _ := cmd.Flags().GetString("description")
		promptFile, _ := cmd.Flags().GetString("prompt-file")

		req := api.CreateSessionRequest{Name: name, Description: description}
		if promptFile != "" {
			content, err := os.ReadFile(promptFile)
			if err != nil {
				return fmt.Errorf("read prompt file: %w", err)
			}
			req.InitialPrompt = string(content)
		}

		session, err := newAPIClient().CreateSession(ctx, req)
		if err != nil {
			return err
		}
		return writeOutput(session)
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		if err := newAPIClient().DeleteSession(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted session %s\n", args[0])
		return nil
	},
}

var sessionsSetPromptCmd = &cobra.Command{
	Use:   "set-prompt <session-id>",
	Short: "Replace the initial system prompt of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		promptFile, _ := cmd.Flags().GetString("prompt-file")
		if promptFile == "" {
			return fmt.Errorf("--prompt-file is required")
		}
		content, err := os.ReadFile(promptFile)
		if err != nil {
			return fmt.Errorf("read prompt file: %w", err)
		}

		session, err := newAPIClient().UpdateSessionPrompt(ctx, args[0], string(content))
		if err != nil {
			return err
		}
		return writeOutput(session)
	},
}

var labsCmd = &cobra.Command{
	Use:   "labs",
	Short: "List prompt labs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		sessionID, _ := cmd.Flags().GetString("session")
		labs, err := newAPIClient().ListLabs(ctx, sessionID)
		if err != nil {
			return err
		}
		return writeOutput(labs)
	},
}

func writeOutput(payload any) error {
	format, err := export.ParseFormat(config.ExportFormat())
	if err != nil {
		return err
	}
	return export.Write(os.Stdout, format, payload)
}

func init() {
	sessionsCreateCmd.Flags().String("name", "", "Session name")
	sessionsCreateCmd.Flags().String("description", "", "Session description")
	sessionsCreateCmd.Flags().String("prompt-file", "", "File holding the initial system prompt")
	sessionsSetPromptCmd.Flags().String("prompt-file", "", "File holding the new system prompt")
	sessionsListCmd.Flags().Bool("cached", false, "Read from the local snapshot cache")
	sessionsGetCmd.Flags().Bool("cached", false, "Read from the local snapshot cache")
	labsCmd.Flags().String("session", "", "Filter labs by session id")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsGetCmd)
	sessionsCmd.AddCommand(sessionsCreateCmd)
	sessionsCmd.AddCommand(sessionsSetPromptCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

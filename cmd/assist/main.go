// Package main provides the assist CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/workbenchhq/assist/cli"
)

var (
	// Global flags
	conversationID string
	projectID      string
	verbose        bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "assist",
		Short: "AI assistant for a collaborative developer workspace",
		Long: `Ask questions about your projects, tasks, snippets, and docs.

Answers are grounded in your workspace: project-scoped questions run an
agentic tool loop over your records, unscoped questions run hybrid
vector + keyword retrieval.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&conversationID, "conversation", "c", "", "Conversation id (random if omitted)")
	rootCmd.PersistentFlags().StringVarP(&projectID, "project", "p", "", "Project id to scope the question to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show retrieved context and warnings")

	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(draftCmd())
	rootCmd.AddCommand(providersCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func options() cli.Options {
	id := conversationID
	if id == "" {
		id = uuid.NewString()
	}
	return cli.Options{
		ConversationID: id,
		ProjectID:      projectID,
		Verbose:        verbose,
	}
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about your workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Ask(context.Background(), args[0], options())
		},
	}
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [project-id]",
		Short: "Suggest new work items for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Suggest(context.Background(), args[0], options())
		},
	}
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [task-id]",
		Short: "Generate an implementation plan for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Plan(context.Background(), args[0], options())
		},
	}
}

func draftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft [task-id]",
		Short: "Draft code changes for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Draft(context.Background(), args[0], options())
		},
	}
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported model providers",
		Run: func(cmd *cobra.Command, args []string) {
			cli.Providers()
		},
	}
}

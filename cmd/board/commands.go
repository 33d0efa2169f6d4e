package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/pkg/taskapi"
)

const (
	envAPIURL     = "TASKBOARD_API_URL"
	defaultAPIURL = "http://localhost:8080"
)

type action func(ctx context.Context, b *board.Board) error

func newRootCmd() *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:   "board",
		Short: "Command-line task board for the TaskBoard API",
		Long: `board lists, adds, renames and deletes tasks on a TaskBoard API.

EXAMPLES:
  board list
  board add "Design onboarding flow"
  board rename 3 "Design signup flow"
  board delete 3

CONFIGURATION:
  --api or TASKBOARD_API_URL sets the API base URL (default: http://localhost:8080)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL")

	run := func(cmd *cobra.Command, act action) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		b := board.New(taskapi.NewClient(resolveAPIURL(apiURL)))
		err := b.Load(ctx)
		if err == nil && act != nil {
			err = act(ctx, b)
		}
		if rerr := board.Render(cmd.OutOrStdout(), b.View()); rerr != nil && err == nil {
			err = rerr
		}
		return err
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show every task",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, nil)
			},
		},
		&cobra.Command{
			Use:   "add <title>",
			Short: "Add a task",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, func(ctx context.Context, b *board.Board) error {
					b.SetNewTitle(strings.Join(args, " "))
					return b.Create(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "rename <id> <title>",
			Short: "Rename a task",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return run(cmd, func(ctx context.Context, b *board.Board) error {
					if err := b.StartEditing(id); err != nil {
						return fmt.Errorf("task %d: %w", id, err)
					}
					b.SetEditingTitle(strings.Join(args[1:], " "))
					return b.SaveEditing(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return run(cmd, func(ctx context.Context, b *board.Board) error {
					return b.Delete(ctx, id)
				})
			},
		},
	)

	return root
}

func resolveAPIURL(flag string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(envAPIURL); v != "" {
		return v
	}
	return defaultAPIURL
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

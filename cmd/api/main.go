package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "taskboard/docs" // Swagger docs
)

// @title       TaskBoard API
// @description CRUD API over the TaskBoard task list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrate bool

	root := &cobra.Command{
		Use:           "api",
		Short:         "TaskBoard HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrateOverride(cmd, migrate))
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrateOverride(cmd, migrate))
		},
	}

	for _, c := range []*cobra.Command{root, serve} {
		c.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving (overrides database.auto_migrate)")
	}
	root.AddCommand(serve, newMigrateCmd())
	return root
}

// migrateOverride returns nil unless --migrate was given explicitly.
func migrateOverride(cmd *cobra.Command, value bool) *bool {
	if !cmd.Flags().Changed("migrate") {
		return nil
	}
	return &value
}

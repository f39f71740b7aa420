package cli

import (
	"fmt"
	"os"

	"github.com/monoforge-labs/monoforge/internal/config"
	"github.com/monoforge-labs/monoforge/internal/runner"
	"github.com/monoforge-labs/monoforge/internal/ui"
	"github.com/monoforge-labs/monoforge/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new monorepo workspace",
	Long: `Create a new monorepo workspace in the current directory.

The workspace ships with a pinned package manager, a Turborepo pipeline,
a shared TypeScript configuration, local development services (Postgres +
Redis), a database access package, and a task queue package.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		o := &workspace.Orchestrator{
			Base:     cwd,
			Scope:    config.Scope(),
			PM:       config.PackageManager(),
			Fallback: config.FallbackVersion(),
			Runner:   &runner.ExecRunner{},
			Out:      ui.New(),
		}
		return o.Init(args[0])
	},
}

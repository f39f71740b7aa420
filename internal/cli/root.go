package cli

import (
	"github.com/monoforge-labs/monoforge/internal/branding"
	"github.com/monoforge-labs/monoforge/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bootstraps a pnpm + Turborepo monorepo from fixed templates:
a workspace with shared configuration, a database package, and a task queue
package, plus app generators for Next.js and minimal Node.js services.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

package cli

import (
	"fmt"
	"os"

	"github.com/monoforge-labs/monoforge/internal/appunit"
	"github.com/monoforge-labs/monoforge/internal/config"
	"github.com/monoforge-labs/monoforge/internal/runner"
	"github.com/monoforge-labs/monoforge/internal/scaffold"
	"github.com/monoforge-labs/monoforge/internal/ui"
	"github.com/spf13/cobra"
)

var (
	appNext bool
	appNode bool
)

func init() {
	appCmd.Flags().BoolVar(&appNext, "next", false, "Scaffold a Next.js app")
	appCmd.Flags().BoolVar(&appNode, "node", false, "Scaffold a minimal Node.js app")
	appCmd.MarkFlagsMutuallyExclusive("next", "node")
	rootCmd.AddCommand(appCmd)
}

var appCmd = &cobra.Command{
	Use:   "app <name> [--next|--node]",
	Short: "Add an application to the workspace",
	Long: `Add an application unit under apps/ in the current workspace.

With --next, scaffolding is delegated to create-next-app. With --node, a
minimal Node.js service (tsup + TypeScript) is generated. With neither
flag, the variant is chosen interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		var variant appunit.Variant
		switch {
		case appNext:
			variant = appunit.VariantNext
		case appNode:
			variant = appunit.VariantNode
		}

		out := ui.New()
		o := &appunit.Orchestrator{
			Base:   cwd,
			Scope:  config.Scope(),
			PM:     config.PackageManager(),
			Runner: &runner.ExecRunner{},
			Mat:    scaffold.New(out),
			Out:    out,
		}
		return o.Create(args[0], variant)
	},
}

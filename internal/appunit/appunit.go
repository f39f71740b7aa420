package appunit

import (
	"fmt"
	"path/filepath"

	"github.com/monoforge-labs/monoforge/internal/fsops"
	"github.com/monoforge-labs/monoforge/internal/manifest"
	"github.com/monoforge-labs/monoforge/internal/runner"
	"github.com/monoforge-labs/monoforge/internal/scaffold"
	"github.com/monoforge-labs/monoforge/internal/ui"
)

// Variant selects how an application unit is scaffolded.
type Variant string

const (
	// VariantNext delegates scaffolding to the Next.js generator.
	VariantNext Variant = "next"
	// VariantNode materializes a minimal Node.js runtime unit.
	VariantNode Variant = "node"
)

// Orchestrator adds an application unit to an existing workspace. Base is
// the workspace root the apps/ group lives under.
type Orchestrator struct {
	Base   string
	Scope  string
	PM     string
	Runner runner.Runner
	Mat    *scaffold.Materializer
	Out    *ui.Printer

	// Pick resolves an interactive menu choice. Defaults to ui.Select;
	// tests inject a canned chooser.
	Pick func(title string, options []string) (int, error)
}

// Create provisions the named application unit. An empty variant is
// resolved interactively before any filesystem mutation.
func (o *Orchestrator) Create(name string, variant Variant) error {
	if variant == "" {
		resolved, err := o.resolveVariant()
		if err != nil {
			return err
		}
		variant = resolved
	}

	dir := filepath.Join(o.Base, "apps", name)
	o.Out.Step("Creating app %s", name)
	if err := fsops.EnsureDir(dir); err != nil {
		return err
	}

	switch variant {
	case VariantNext:
		if err := o.scaffoldNext(name, dir); err != nil {
			return err
		}
	case VariantNode:
		if err := o.scaffoldNode(name, dir); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown app variant %q", variant)
	}

	o.Out.Success("App %s is ready", name)
	return nil
}

func (o *Orchestrator) resolveVariant() (Variant, error) {
	pick := o.Pick
	if pick == nil {
		pick = ui.Select
	}

	idx, err := pick("Which kind of app?", []string{
		"Next.js (framework scaffold)",
		"Node.js (minimal runtime)",
	})
	if err != nil {
		return "", fmt.Errorf("resolving app variant (pass --next or --node to skip the prompt): %w", err)
	}
	if idx == 0 {
		return VariantNext, nil
	}
	return VariantNode, nil
}

// scaffoldNext delegates the whole unit to the external Next.js generator,
// then links the workspace-internal data access package into it.
func (o *Orchestrator) scaffoldNext(name, dir string) error {
	o.Out.Step("Running the Next.js scaffolder")
	err := o.Runner.Run(o.Base, o.PM,
		"create", "next-app@latest", filepath.Join("apps", name),
		"--typescript", "--eslint", "--app", "--use-pnpm")
	if err != nil {
		return fmt.Errorf("scaffolding Next.js app: %w", err)
	}

	o.Out.Step("Linking workspace packages")
	if err := o.Runner.Run(dir, o.PM, "add", o.Scope+"/db", "--workspace"); err != nil {
		return fmt.Errorf("linking %s/db: %w", o.Scope, err)
	}
	return nil
}

// scaffoldNode materializes a minimal runtime unit: manifest, type-check
// configuration, build configuration and greeting stub from the node-app
// template, then three separate dev dependency installs.
func (o *Orchestrator) scaffoldNode(name, dir string) error {
	p := &manifest.PackageJSON{
		Name:    o.Scope + "/" + name,
		Private: true,
		Type:    "module",
		Scripts: map[string]string{
			"build":       "tsup",
			"check-types": "tsc --noEmit",
			"dev":         `tsup --watch --onSuccess "node dist/index.js"`,
			"start":       "node dist/index.js",
		},
	}
	if err := manifest.WritePackageJSON(filepath.Join(dir, "package.json"), p, o.Out); err != nil {
		return err
	}

	if err := manifest.WriteTSConfig(filepath.Join(dir, "tsconfig.json"), manifest.UnitTSConfig(o.Scope)); err != nil {
		return err
	}

	if err := o.Mat.Materialize("node-app", dir); err != nil {
		return err
	}

	o.Out.Step("Installing app dependencies")
	installs := [][]string{
		{"add", "-D", o.Scope + "/typescript-config", "--workspace"},
		{"add", "-D", "tsup"},
		{"add", "-D", "typescript"},
	}
	for _, args := range installs {
		if err := o.Runner.Run(dir, o.PM, args...); err != nil {
			return fmt.Errorf("installing app dependencies: %w", err)
		}
	}
	return nil
}

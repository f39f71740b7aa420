package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/monoforge-labs/monoforge/internal/fsops"
	"github.com/monoforge-labs/monoforge/internal/manifest"
	"github.com/monoforge-labs/monoforge/internal/runner"
	"github.com/monoforge-labs/monoforge/internal/ui"
)

// Orchestrator provisions a complete workspace. Base is the directory the
// workspace root is created in; it is threaded explicitly through every step
// so no global working directory is ever mutated.
type Orchestrator struct {
	Base     string
	Scope    string
	PM       string
	Fallback string
	Runner   runner.Runner
	Out      *ui.Printer
}

// gitignore is the fixed ignore file written into every workspace root.
const gitignore = `node_modules/
dist/
.turbo/
.next/
.env
*.log
.DS_Store
`

// Init runs the workspace provisioning sequence. Steps execute strictly in
// order; the first fatal failure aborts with no rollback, leaving the
// partial workspace on disk for inspection.
func (o *Orchestrator) Init(name string) error {
	root := filepath.Join(o.Base, name)

	o.Out.Step("Creating workspace %s", name)
	if err := fsops.EnsureDir(root); err != nil {
		return err
	}

	o.Out.Step("Writing workspace configuration")
	if err := o.writeWorkspaceConfig(root); err != nil {
		return err
	}

	o.Out.Step("Writing workspace manifest")
	version := runner.DetectPackageManagerVersion(o.Runner, o.Out, o.PM, o.Fallback)
	if err := o.writeRootManifest(root, name, version); err != nil {
		return err
	}

	// The manifest just written defines what gets installed, so the install
	// must come after it.
	o.Out.Step("Installing workspace dependencies")
	if err := o.Runner.Run(root, o.PM, "install"); err != nil {
		return fmt.Errorf("installing workspace dependencies: %w", err)
	}

	o.Out.Step("Writing task pipeline")
	if err := manifest.WriteTurbo(filepath.Join(root, "turbo.json"), manifest.DefaultTurbo()); err != nil {
		return err
	}

	o.Out.Step("Creating shared TypeScript configuration")
	if err := o.writeTypeScriptConfig(root); err != nil {
		return err
	}

	o.Out.Step("Creating development services")
	if err := o.writeDevServices(root, name); err != nil {
		return err
	}

	// db before queue: no dependency requires it, but the order is part of
	// the tool's deterministic output.
	for _, unit := range []*PackageUnit{DataAccessUnit(o.Scope), QueueUnit(o.Scope)} {
		o.Out.Step("Provisioning %s/%s", o.Scope, unit.Name)
		if err := o.provisionUnit(root, unit); err != nil {
			return err
		}
	}

	o.Out.Success("Workspace %s is ready", name)
	return nil
}

// writeWorkspaceConfig writes the membership declaration and creates the
// member-group directories plus the ignore file.
func (o *Orchestrator) writeWorkspaceConfig(root string) error {
	if err := manifest.WritePnpmWorkspace(filepath.Join(root, "pnpm-workspace.yaml"), manifest.DefaultWorkspace()); err != nil {
		return err
	}
	if err := fsops.EnsureDir(filepath.Join(root, "apps")); err != nil {
		return err
	}
	if err := fsops.EnsureDir(filepath.Join(root, "packages")); err != nil {
		return err
	}
	return fsops.WriteFile(filepath.Join(root, ".gitignore"), gitignore)
}

// writeRootManifest composes the workspace manifest with the detected (or
// fallback) package manager version pinned.
func (o *Orchestrator) writeRootManifest(root, name, version string) error {
	p := &manifest.PackageJSON{
		Name:           name,
		Private:        true,
		PackageManager: o.PM + "@" + version,
		Scripts: map[string]string{
			"build":       "turbo run build",
			"dev":         "turbo run dev",
			"lint":        "turbo run lint",
			"check-types": "turbo run check-types",
			"test":        "turbo run test",
		},
		DevDependencies: map[string]string{
			"turbo": "latest",
		},
	}
	return manifest.WritePackageJSON(filepath.Join(root, "package.json"), p, o.Out)
}

// writeTypeScriptConfig creates the shared base configuration package and
// installs it in place.
func (o *Orchestrator) writeTypeScriptConfig(root string) error {
	dir := filepath.Join(root, "packages", "typescript-config")
	if err := fsops.EnsureDir(dir); err != nil {
		return err
	}

	p := &manifest.PackageJSON{
		Name:    o.Scope + "/typescript-config",
		Private: true,
	}
	if err := manifest.WritePackageJSON(filepath.Join(dir, "package.json"), p, o.Out); err != nil {
		return err
	}
	if err := fsops.WriteFile(filepath.Join(dir, "base.json"), baseTSConfig); err != nil {
		return err
	}

	if err := o.Runner.Run(dir, o.PM, "install"); err != nil {
		return fmt.Errorf("installing typescript-config: %w", err)
	}
	return nil
}

// writeDevServices creates the local development services package: a
// docker compose definition for Postgres and Redis, named after the
// workspace.
func (o *Orchestrator) writeDevServices(root, name string) error {
	dir := filepath.Join(root, "packages", "dev-services")
	if err := fsops.EnsureDir(dir); err != nil {
		return err
	}

	p := &manifest.PackageJSON{
		Name:    o.Scope + "/dev-services",
		Private: true,
		Scripts: map[string]string{
			"up":   "docker compose up -d",
			"down": "docker compose down",
		},
	}
	if err := manifest.WritePackageJSON(filepath.Join(dir, "package.json"), p, o.Out); err != nil {
		return err
	}

	composeFile, err := manifest.RenderDevServices(name)
	if err != nil {
		return err
	}
	if err := fsops.WriteFile(filepath.Join(dir, "docker-compose.yml"), composeFile); err != nil {
		return err
	}

	if err := o.Runner.Run(dir, o.PM, "install"); err != nil {
		return fmt.Errorf("installing dev-services: %w", err)
	}
	return nil
}

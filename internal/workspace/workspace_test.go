package workspace

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/monoforge-labs/monoforge/internal/fsops"
	"github.com/monoforge-labs/monoforge/internal/ui"
)

// recordingRunner records every invocation and can be told to fail on a
// matching command.
type recordingRunner struct {
	calls   []call
	version string // RunCapturing output for --version
	failOn  string // substring of "name args..." that triggers a failure
}

type call struct {
	dir  string
	name string
	args []string
}

func (r *recordingRunner) record(dir, name string, args []string) error {
	r.calls = append(r.calls, call{dir: dir, name: name, args: args})
	full := name + " " + strings.Join(args, " ")
	if r.failOn != "" && strings.Contains(full, r.failOn) {
		return fmt.Errorf("command failed: %s", full)
	}
	return nil
}

func (r *recordingRunner) Run(dir, name string, args ...string) error {
	return r.record(dir, name, args)
}

func (r *recordingRunner) RunCapturing(dir, name string, args ...string) (string, error) {
	if err := r.record(dir, name, args); err != nil {
		return "", err
	}
	return r.version, nil
}

func newOrchestrator(t *testing.T, r *recordingRunner) (*Orchestrator, string) {
	t.Helper()
	base := t.TempDir()
	var buf bytes.Buffer
	return &Orchestrator{
		Base:     base,
		Scope:    "@repo",
		PM:       "pnpm",
		Fallback: "9.0.0",
		Runner:   r,
		Out:      &ui.Printer{Out: &buf, Err: &buf},
	}, base
}

func TestInitProducesWorkspaceTree(t *testing.T) {
	r := &recordingRunner{version: "10.4.1"}
	o, base := newOrchestrator(t, r)

	if err := o.Init("demo"); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	root := filepath.Join(base, "demo")

	var rootManifest map[string]any
	if err := fsops.ReadJSON(filepath.Join(root, "package.json"), &rootManifest); err != nil {
		t.Fatalf("root manifest: %v", err)
	}
	if rootManifest["packageManager"] != "pnpm@10.4.1" {
		t.Errorf("packageManager = %v, want pnpm@10.4.1", rootManifest["packageManager"])
	}
	if rootManifest["private"] != true {
		t.Error("root manifest should be private")
	}
	scripts := rootManifest["scripts"].(map[string]any)
	for _, s := range []string{"build", "dev", "lint", "check-types", "test"} {
		if scripts[s] == nil {
			t.Errorf("root scripts missing %q", s)
		}
	}

	var turbo map[string]any
	if err := fsops.ReadJSON(filepath.Join(root, "turbo.json"), &turbo); err != nil {
		t.Fatalf("turbo.json: %v", err)
	}
	build := turbo["tasks"].(map[string]any)["build"].(map[string]any)
	if !reflect.DeepEqual(build["dependsOn"], []any{"^build"}) {
		t.Errorf("tasks.build.dependsOn = %v, want [^build]", build["dependsOn"])
	}

	for unit, wantName := range map[string]string{
		"db":    "@repo/db",
		"queue": "@repo/queue",
	} {
		var m map[string]any
		path := filepath.Join(root, "packages", unit, "package.json")
		if err := fsops.ReadJSON(path, &m); err != nil {
			t.Fatalf("%s manifest: %v", unit, err)
		}
		if m["name"] != wantName {
			t.Errorf("%s name = %v, want %s", unit, m["name"], wantName)
		}
	}

	for _, rel := range []string{
		"pnpm-workspace.yaml",
		".gitignore",
		"apps",
		"packages/typescript-config/base.json",
		"packages/dev-services/docker-compose.yml",
		"packages/db/src/schema.ts",
		"packages/db/tsconfig.json",
		"packages/queue/src/index.ts",
	} {
		if !fsops.Exists(filepath.Join(root, rel)) {
			t.Errorf("expected %s to exist", rel)
		}
	}
}

func TestInitCommandOrder(t *testing.T) {
	r := &recordingRunner{version: "10.4.1"}
	o, base := newOrchestrator(t, r)

	if err := o.Init("demo"); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	root := filepath.Join(base, "demo")

	var got []string
	for _, c := range r.calls {
		rel, err := filepath.Rel(root, c.dir)
		if err != nil || c.dir == "" {
			rel = "."
		}
		got = append(got, rel+": "+c.name+" "+strings.Join(c.args, " "))
	}

	want := []string{
		".: pnpm --version",
		".: pnpm install",
		"packages/typescript-config: pnpm install",
		"packages/dev-services: pnpm install",
		"packages/db: pnpm install",
		"packages/queue: pnpm install",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("command sequence:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestInitVersionFallback(t *testing.T) {
	r := &recordingRunner{failOn: "--version"}
	o, base := newOrchestrator(t, r)

	if err := o.Init("demo"); err != nil {
		t.Fatalf("Init() should recover from version detection failure: %v", err)
	}

	var rootManifest map[string]any
	if err := fsops.ReadJSON(filepath.Join(base, "demo", "package.json"), &rootManifest); err != nil {
		t.Fatal(err)
	}
	if rootManifest["packageManager"] != "pnpm@9.0.0" {
		t.Errorf("packageManager = %v, want fallback pnpm@9.0.0", rootManifest["packageManager"])
	}
}

func TestInitInstallFailureIsFatalWithoutRollback(t *testing.T) {
	r := &recordingRunner{version: "10.4.1", failOn: "install"}
	o, base := newOrchestrator(t, r)

	if err := o.Init("demo"); err == nil {
		t.Fatal("Init() should fail when the workspace install fails")
	}
	root := filepath.Join(base, "demo")

	// Everything written before the failing step stays on disk.
	if !fsops.Exists(filepath.Join(root, "package.json")) {
		t.Error("root manifest should survive the failure")
	}
	if !fsops.Exists(filepath.Join(root, "pnpm-workspace.yaml")) {
		t.Error("membership file should survive the failure")
	}
	// Nothing after the failing step runs.
	if fsops.Exists(filepath.Join(root, "turbo.json")) {
		t.Error("steps after the failure must not run")
	}
	if fsops.Exists(filepath.Join(root, "packages", "db")) {
		t.Error("package units must not be provisioned after a fatal failure")
	}
}

func TestInitDBNameUnderscored(t *testing.T) {
	r := &recordingRunner{version: "10.4.1"}
	o, base := newOrchestrator(t, r)

	if err := o.Init("my-shop"); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	content := readFile(t, filepath.Join(base, "my-shop", "packages", "dev-services", "docker-compose.yml"))
	if !strings.Contains(content, "POSTGRES_DB: my_shop") {
		t.Errorf("compose file should underscore the db name:\n%s", content)
	}
}

func TestUnitTSConfigExtendsSharedBase(t *testing.T) {
	r := &recordingRunner{version: "10.4.1"}
	o, base := newOrchestrator(t, r)

	if err := o.Init("demo"); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	var tsconfig map[string]any
	path := filepath.Join(base, "demo", "packages", "db", "tsconfig.json")
	if err := fsops.ReadJSON(path, &tsconfig); err != nil {
		t.Fatal(err)
	}
	if tsconfig["extends"] != "@repo/typescript-config/base.json" {
		t.Errorf("extends = %v", tsconfig["extends"])
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

package manifest

// PackageJSON models an npm package manifest. Field order here is the
// serialization order of the generated file.
type PackageJSON struct {
	Name            string            `json:"name,omitempty"`
	Private         bool              `json:"private,omitempty"`
	Type            string            `json:"type,omitempty"`
	PackageManager  string            `json:"packageManager,omitempty"`
	Exports         map[string]Export `json:"exports,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Export is a conditional export entry ("." → types/default paths).
type Export struct {
	Types   string `json:"types,omitempty"`
	Default string `json:"default,omitempty"`
}

// TurboConfig models the task-runner pipeline configuration (turbo.json).
type TurboConfig struct {
	Schema string          `json:"$schema"`
	UI     string          `json:"ui"`
	Tasks  map[string]Task `json:"tasks"`
}

// Task is a single pipeline task declaration.
type Task struct {
	DependsOn  []string `json:"dependsOn,omitempty"`
	Inputs     []string `json:"inputs,omitempty"`
	Outputs    []string `json:"outputs,omitempty"`
	Cache      *bool    `json:"cache,omitempty"`
	Persistent bool     `json:"persistent,omitempty"`
}

// TSConfig models a TypeScript configuration file.
type TSConfig struct {
	Schema          string         `json:"$schema,omitempty"`
	Extends         string         `json:"extends,omitempty"`
	CompilerOptions map[string]any `json:"compilerOptions,omitempty"`
	Include         []string       `json:"include,omitempty"`
	Exclude         []string       `json:"exclude,omitempty"`
}

// PnpmWorkspace models pnpm-workspace.yaml, the workspace membership file.
type PnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// CacheOff returns a pointer suitable for Task.Cache. Uncached tasks must
// serialize an explicit "cache": false, which omitempty would otherwise drop.
func CacheOff() *bool {
	v := false
	return &v
}

// DefaultTurbo returns the pipeline configuration written by workspace init:
// build depends on upstream builds and caches dist output, check-types
// depends on upstream type checks, dev and test run uncached and persistent.
func DefaultTurbo() *TurboConfig {
	return &TurboConfig{
		Schema: "https://turbo.build/schema.json",
		UI:     "tui",
		Tasks: map[string]Task{
			"build": {
				DependsOn: []string{"^build"},
				Inputs:    []string{"$TURBO_DEFAULT$", ".env*"},
				Outputs:   []string{"dist/**", ".next/**", "!.next/cache/**"},
			},
			"check-types": {
				DependsOn: []string{"^check-types"},
			},
			"dev": {
				Cache:      CacheOff(),
				Persistent: true,
			},
			"test": {
				Cache:      CacheOff(),
				Persistent: true,
			},
		},
	}
}

// DefaultWorkspace returns the membership declaration: application units
// under apps/, package units under packages/. Order is part of the contract.
func DefaultWorkspace() *PnpmWorkspace {
	return &PnpmWorkspace{Packages: []string{"apps/*", "packages/*"}}
}

// UnitTSConfig returns the type-check configuration for a workspace unit,
// extending the shared base from the given scope.
func UnitTSConfig(scope string) *TSConfig {
	return &TSConfig{
		Extends:         scope + "/typescript-config/base.json",
		CompilerOptions: map[string]any{"outDir": "dist"},
		Include:         []string{"src/**/*"},
		Exclude:         []string{"node_modules"},
	}
}

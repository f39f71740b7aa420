package manifest

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/monoforge-labs/monoforge/internal/fsops"
	"github.com/monoforge-labs/monoforge/internal/ui"
)

// WritePackageJSON validates p against the embedded schema and writes it to
// path. Validation issues are warnings, not failures: the workspace stays
// buildable even if a script name drifts from the schema.
func WritePackageJSON(path string, p *PackageJSON, out *ui.Printer) error {
	result, err := Validate(p)
	if err != nil {
		out.Warn("could not validate %s: %v", path, err)
	} else if !result.Valid {
		for _, issue := range result.Issues {
			out.Warn("%s: %s", path, issue)
		}
	}
	return fsops.WriteJSON(path, p)
}

// WriteTurbo writes the task-runner pipeline configuration.
func WriteTurbo(path string, t *TurboConfig) error {
	return fsops.WriteJSON(path, t)
}

// WriteTSConfig writes a TypeScript configuration file.
func WriteTSConfig(path string, c *TSConfig) error {
	return fsops.WriteJSON(path, c)
}

// WritePnpmWorkspace writes the workspace membership file as YAML.
func WritePnpmWorkspace(path string, w *PnpmWorkspace) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	return fsops.WriteFile(path, string(data))
}

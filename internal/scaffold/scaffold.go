package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/monoforge-labs/monoforge/internal/ui"
)

//go:embed all:templates
var templateFS embed.FS

// Materializer copies named template trees onto target directories.
// Source defaults to the templates shipped inside the binary; tests can
// substitute any fs.FS.
type Materializer struct {
	Source fs.FS
	Out    *ui.Printer
}

// New returns a Materializer over the embedded template tree.
func New(out *ui.Printer) *Materializer {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(fmt.Sprintf("embedded templates missing: %v", err))
	}
	return &Materializer{Source: sub, Out: out}
}

// Materialize copies every file under the named template into targetDir,
// creating directories as needed and overwriting same-named files. Files
// already in the target with no counterpart in the template are untouched.
//
// A missing template is a logged no-op, not a failure: callers either
// validated availability up front or can continue without the copy.
func (m *Materializer) Materialize(templateID, targetDir string) error {
	info, err := fs.Stat(m.Source, templateID)
	if err != nil || !info.IsDir() {
		m.Out.Error("template %q not found, skipping", templateID)
		return nil
	}

	err = fs.WalkDir(m.Source, templateID, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(templateID, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(targetDir, rel)

		if d.IsDir() {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", dst, err)
			}
			return nil
		}

		data, err := fs.ReadFile(m.Source, path)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", path, err)
		}
		// Template bytes are copied verbatim; placeholder substitution is a
		// future extension, not a current contract.
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("materializing template %q into %s: %w", templateID, targetDir, err)
	}
	return nil
}

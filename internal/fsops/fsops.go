package fsops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates path and any missing parents. A no-op when the
// directory already exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to path with surrounding whitespace trimmed and a
// single trailing newline, creating parent directories as needed.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	data := strings.TrimSpace(content) + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteJSON serializes v with 2-space indentation and writes it to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	return WriteFile(path, string(data))
}

// ReadJSON parses the JSON file at path into out. A missing file is an error.
func ReadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// UpdateJSON shallow-merges newData into the JSON object at path and writes
// the result. A missing file is treated as an empty object. Top-level keys in
// newData replace existing values whole; nested objects are never merged.
func UpdateJSON(path string, newData map[string]any) error {
	existing := map[string]any{}
	if Exists(path) {
		if err := ReadJSON(path, &existing); err != nil {
			return err
		}
	}
	for k, v := range newData {
		existing[k] = v
	}
	return WriteJSON(path, existing)
}

// ClearDirectory removes everything inside path without removing path
// itself. A no-op when path does not exist.
func ClearDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return fmt.Errorf("clearing %s: %w", path, err)
		}
	}
	return nil
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

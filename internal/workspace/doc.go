// Package workspace provisions a new multi-package workspace: root
// directory, membership declaration, workspace manifest, dependency
// install, task pipeline, shared configuration packages, and the built-in
// db and queue package units.
//
// Provisioning is strictly sequential. A fatal failure aborts immediately
// and performs no rollback: partial state stays on disk for debugging.
package workspace

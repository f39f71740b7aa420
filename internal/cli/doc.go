// Package cli wires the cobra command tree: init (workspace creation),
// app (application units), and version. Commands construct orchestrators
// with real collaborators; all behavior lives in the internal packages.
package cli

// Package fsops provides the filesystem primitives shared by manifest
// composition and template materialization: idempotent directory creation,
// trimmed text writes, pretty-printed JSON I/O with shallow-merge updates,
// and directory clearing.
package fsops

// Package manifest composes the structured files a workspace is made of:
// package manifests, the task-runner pipeline, TypeScript configurations,
// the workspace membership file, and the development services definition.
//
// Manifests are built as typed values and serialized through fsops with
// 2-space indentation. Composed package manifests are validated against an
// embedded JSON Schema before writing; issues are reported as warnings.
package manifest

// Package appunit adds runnable application units to a workspace, either by
// delegating to an external framework scaffolder (Next.js) or by
// materializing a minimal Node.js runtime unit.
package appunit

// Package scaffold materializes fixed template trees shipped with the
// binary onto target directories. Materialization is a merge-copy: the
// template wins on filename conflicts, unrelated target files survive.
package scaffold

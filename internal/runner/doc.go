// Package runner executes external commands synchronously.
//
// Commands run either attached to the controlling terminal (Run) or with
// captured stdout (RunCapturing). Every nonzero exit is fatal to the calling
// orchestration except package manager version detection, which recovers to
// a fixed fallback version.
package runner

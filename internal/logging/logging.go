// Package logging provides the process's single debug-log file handle:
// truncated on start, appended to thereafter, injected into the
// components that need it rather than referenced as a package-level
// global.
package logging

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Open truncates (or creates) the file at path and returns a *log.Logger
// writing to it, each line prefixed with a UUID tagging this process
// lifetime so that interleaved lines from two processes writing to the
// same path at the same time stay distinguishable. A later run truncates
// the file, so lines of earlier, finished runs are not kept.
func Open(path string) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "logging: open debug log")
	}
	runID := uuid.New().String()[:8]
	logger := log.New(f, "["+runID+"] ", log.LstdFlags|log.Lmicroseconds)
	return logger, f, nil
}

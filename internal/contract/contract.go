// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
)

// Sentinel errors returned while acquiring a source.
var (
	ErrNoSource       = errors.New("no source given")
	ErrEmptySource    = errors.New("source is empty")
	ErrMissingColumns = errors.New("source header is missing columns")
)

// SourceLoader acquires the raw text of a weekly keyword report.
// This allows the engine entry points to be tested without touching the filesystem.
type SourceLoader interface {
	// Load returns the full text named by source. The value "-" means stdin.
	Load(ctx context.Context, source string) (string, error)
}

package contract

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/kwtrend/core/agg"
	"github.com/huangsam/kwtrend/schema"
)

// LocalSourceLoader implements the SourceLoader interface by reading a file
// from disk, or Stdin when the source is "-".
type LocalSourceLoader struct {
	Stdin io.Reader
}

var _ SourceLoader = &LocalSourceLoader{} // Compile-time check

// NewLocalSourceLoader creates a new loader reading "-" from os.Stdin.
func NewLocalSourceLoader() *LocalSourceLoader {
	return &LocalSourceLoader{Stdin: os.Stdin}
}

// Load implements the SourceLoader interface.
func (l *LocalSourceLoader) Load(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var (
		data []byte
		err  error
	)
	switch source {
	case "":
		return "", ErrNoSource
	case StdinSource:
		data, err = io.ReadAll(l.Stdin)
	default:
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read source %q: %w", source, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptySource, source)
	}
	return string(data), nil
}

// ValidateHeader checks the header of text against the required columns.
// Missing columns are only an error in strict mode; otherwise they are logged
// and the affected fields read as empty. Counts that are not numeric are
// logged in both modes and still rank as 0.
func ValidateHeader(text string, cols schema.Columns, strict bool) error {
	if n := countNonNumeric(text, cols); n > 0 {
		LogWarn("count check", fmt.Errorf("%d records have a non-numeric %s, counted as 0", n, cols.Metric))
	}
	missing := agg.MissingColumns(text, cols.Required())
	if len(missing) == 0 {
		return nil
	}
	err := fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	if strict {
		return err
	}
	LogWarn("header check", err)
	return nil
}

// countNonNumeric returns how many records carry a metric without a leading integer.
func countNonNumeric(text string, cols schema.Columns) int {
	n := 0
	for rec := range agg.Records(text, cols) {
		if !agg.IsNumeric(rec.Count) {
			n++
		}
	}
	return n
}

package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/kwtrend/schema"
)

// Color variables for console output.
var (
	UpColor   = color.New(color.FgRed, color.Bold) // UpColor flags a rising keyword as a warning.
	DownColor = color.New(color.FgGreen)           // DownColor marks a cooling keyword.
	FlatColor = color.New(color.FgYellow)          // FlatColor marks a stable keyword, not bold.
)

// GetPlainLabel normalizes a pass-through trend value for display.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(trend string) string {
	return strings.TrimSpace(trend)
}

// GetColorLabel returns a colored trend label for console output (table).
// Labels other than up, down and flat are returned uncoloured.
func GetColorLabel(trend string) string {
	text := GetPlainLabel(trend)

	switch schema.TrendLabel(strings.ToLower(text)) {
	case schema.TrendUp:
		return UpColor.Sprint(text)
	case schema.TrendDown:
		return DownColor.Sprint(text)
	case schema.TrendFlat:
		return FlatColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogWrote confirms a file write on stderr so stdout stays machine readable.
func LogWrote(what, path string) {
	_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote %s to %s\n", what, path)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." plus at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

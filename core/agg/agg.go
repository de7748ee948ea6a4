// Package agg parses raw weekly keyword text into typed records.
package agg

import (
	"iter"
	"strings"

	"github.com/huangsam/kwtrend/schema"
)

// Records returns a lazy sequence of the records in text. The sequence is
// finite and restartable: ranging over it twice yields the same records.
// A leading byte-order marker is ignored and surrounding whitespace is trimmed.
// Lines are split on LF after dropping every CR. The first non-empty line is
// the header; each later line is split on commas and mapped positionally onto
// the header names. Lines without a period value are skipped.
func Records(text string, cols schema.Columns) iter.Seq[schema.Record] {
	return func(yield func(schema.Record) bool) {
		header, body := splitHeader(normalizeLineEndings(text))
		if header == nil {
			return
		}
		for line := range strings.SplitSeq(body, "\n") {
			rec, ok := parseLine(line, header, cols)
			if !ok {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Parse collects every record in text, together with the distinct period
// values in the order they were first seen.
func Parse(text string, cols schema.Columns) ([]schema.Record, []string) {
	var records []schema.Record
	var firstSeen []string
	seen := make(map[string]struct{})
	for rec := range Records(text, cols) {
		if _, ok := seen[rec.Period]; !ok {
			seen[rec.Period] = struct{}{}
			firstSeen = append(firstSeen, rec.Period)
		}
		records = append(records, rec)
	}
	return records, firstSeen
}

// Header returns the header names of text, or nil when text has no non-empty line.
func Header(text string) []string {
	header, _ := splitHeader(normalizeLineEndings(text))
	return header
}

// MissingColumns reports which of the required columns the header of text lacks.
func MissingColumns(text string, required []string) []string {
	present := make(map[string]struct{})
	for _, name := range Header(text) {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// normalizeLineEndings drops one leading byte-order marker, removes every
// carriage return and trims surrounding whitespace from the whole text.
// Fields inside the text are left untouched.
func normalizeLineEndings(text string) string {
	text = strings.TrimPrefix(text, schema.ByteOrderMark)
	return strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))
}

// splitHeader finds the first non-empty line and returns its comma-split names
// along with the rest of the text.
func splitHeader(text string) ([]string, string) {
	rest := text
	for rest != "" {
		line, after, _ := strings.Cut(rest, "\n")
		rest = after
		if line != "" {
			return strings.Split(line, ","), rest
		}
	}
	return nil, ""
}

// parseLine maps one data line onto the header. Missing trailing values are
// empty strings; values beyond the header are ignored. Duplicate header names
// keep the right-most value.
func parseLine(line string, header []string, cols schema.Columns) (schema.Record, bool) {
	values := strings.Split(line, ",")
	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(values) {
			fields[name] = values[i]
		} else {
			fields[name] = ""
		}
	}

	period := fields[cols.Period]
	if period == "" {
		return schema.Record{}, false
	}
	entity := fields[cols.Entity]
	count := fields[cols.Metric]

	delete(fields, cols.Period)
	delete(fields, cols.Entity)
	delete(fields, cols.Metric)

	return schema.Record{
		Period: period,
		Entity: entity,
		Count:  count,
		Metric: ParseMetric(count),
		Aux:    fields,
	}, true
}

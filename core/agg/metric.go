package agg

// maxMetric caps overflowing counts instead of wrapping.
const maxMetric = int(^uint(0) >> 1)

// ParseMetric reads the leading integer of s the way a lenient integer parse
// does: optional leading whitespace, an optional sign, then decimal digits up
// to the first non-digit. "12", " 7", "3.9" and "15x" yield 12, 7, 3 and 15.
// Text with no leading digits is not numeric and yields 0, so it ranks
// together with genuine zero counts.
func ParseMetric(s string) int {
	i := skipSpace(s)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && isDigit(s[i]) {
		d := int(s[i] - '0')
		if n > (maxMetric-d)/10 {
			n = maxMetric
		} else {
			n = n*10 + d
		}
		i++
	}
	if i == start {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

// IsNumeric reports whether s has a leading integer that ParseMetric can read.
func IsNumeric(s string) bool {
	i := skipSpace(s)
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	return i < len(s) && isDigit(s[i])
}

func skipSpace(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

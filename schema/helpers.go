package schema

// SumMetrics returns the summed metric of the given records.
func SumMetrics(records []Record) int {
	total := 0
	for _, r := range records {
		total += r.Metric
	}
	return total
}

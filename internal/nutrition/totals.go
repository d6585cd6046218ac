package nutrition

// CalculateDailyTotals sums the pre-computed contributions of logs.
// Missing contributions count as zero.
func CalculateDailyTotals(logs []LogEntry) Totals {
	var t Totals
	for _, l := range logs {
		t.Calories += valueOrZero(l.Calories)
		t.Protein += valueOrZero(l.Protein)
		t.Carbs += valueOrZero(l.Carbs)
		t.Fat += valueOrZero(l.Fat)
		t.Sugar += valueOrZero(l.Sugar)
	}
	return t
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

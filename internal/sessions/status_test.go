package sessions

import "testing"

func TestIsReviewStatus(t *testing.T) {
	for _, s := range []string{StatusSafe, StatusRisk, StatusNeedsDiscussion} {
		if !IsReviewStatus(s) {
			t.Errorf("IsReviewStatus(%s) = false, want true", s)
		}
	}
	for _, s := range []string{StatusAwaitingAnalysis, StatusProcessed, "", "safe", "DONE"} {
		if IsReviewStatus(s) {
			t.Errorf("IsReviewStatus(%q) = true, want false", s)
		}
	}
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusAwaitingAnalysis, StatusProcessed, true},
		{StatusAwaitingAnalysis, StatusRisk, true},
		{StatusProcessed, StatusRisk, true},
		{StatusRisk, StatusSafe, true},
		{StatusRisk, StatusRisk, true},
		{StatusProcessed, StatusNeedsDiscussion, true},
		{StatusSafe, StatusNeedsDiscussion, true},
		{StatusNeedsDiscussion, StatusSafe, true},
		{StatusProcessed, StatusAwaitingAnalysis, false},
		{StatusRisk, StatusAwaitingAnalysis, false},
		{StatusSafe, StatusProcessed, false},
		{"UNKNOWN", StatusSafe, false},
		{StatusRisk, "UNKNOWN", false},
	}

	for _, tt := range tests {
		if got := ValidTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

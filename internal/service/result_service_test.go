package service

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{1, "1s"},
		{59, "59s"},
		{60, "01:00"},
		{61, "01:01"},
		{125, "02:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "60:00"},
	}

	for _, tc := range tests {
		if got := FormatTime(tc.seconds); got != tc.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestScorePercentage(t *testing.T) {
	tests := []struct {
		name           string
		correct, total int
		want           float64
	}{
		{"zero total", 3, 0, 0},
		{"zero correct", 0, 4, 0},
		{"half", 1, 2, 50},
		{"perfect", 5, 5, 100},
		{"rounds to two decimals", 1, 3, 33.33},
		{"rounds up", 2, 3, 66.67},
		{"one of seven", 1, 7, 14.29},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScorePercentage(tc.correct, tc.total); got != tc.want {
				t.Errorf("ScorePercentage(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
			}
		})
	}
}

package cmd

import (
	"testing"
	"time"
)

func TestFormatLastActivity(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"zero time", time.Time{}, "—"},
		{"today", now.Add(-time.Hour), now.Add(-time.Hour).Format("Today 15:04")},
		{"this week", now.Add(-3 * 24 * time.Hour), now.Add(-3 * 24 * time.Hour).Format("Mon 15:04")},
		{"this year", now.Add(-30 * 24 * time.Hour), now.Add(-30 * 24 * time.Hour).Format("Jan 02 15:04")},
		{"older", now.Add(-2 * 365 * 24 * time.Hour), now.Add(-2 * 365 * 24 * time.Hour).Format("2006-01-02")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLastActivity(tt.in); got != tt.want {
				t.Errorf("formatLastActivity() = %q, want %q", got, tt.want)
			}
		})
	}
}

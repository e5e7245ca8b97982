package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryContextPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		rc       Context
		expected string
	}{
		{
			name:     "elevated stress beats time of day",
			rc:       Context{StressLevel: StressHigh, TimeOfDay: TimeOfDayPtr(Morning)},
			expected: "stress",
		},
		{
			name:     "elevated counts as stress",
			rc:       Context{StressLevel: StressElevated, IsActive: true},
			expected: "stress",
		},
		{
			name:     "time of day beats activity",
			rc:       Context{StressLevel: StressNormal, TimeOfDay: TimeOfDayPtr(Evening), IsActive: true},
			expected: "evening",
		},
		{
			name:     "activity when nothing else",
			rc:       Context{StressLevel: StressLow, IsActive: true},
			expected: "active",
		},
		{
			name:     "default general",
			rc:       Context{StressLevel: StressNormal},
			expected: "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rc.PrimaryContext())
		})
	}
}

func TestSummaryIncludesSignals(t *testing.T) {
	hr := 112.0
	rc := Context{
		StressLevel: StressElevated,
		TimeOfDay:   TimeOfDayPtr(Afternoon),
		IsActive:    true,
		HeartRate:   &hr,
	}

	summary := rc.Summary()
	assert.Contains(t, summary, "stress level: elevated")
	assert.Contains(t, summary, "time of day: afternoon")
	assert.Contains(t, summary, "physically active")
	assert.Contains(t, summary, "112 bpm")
}

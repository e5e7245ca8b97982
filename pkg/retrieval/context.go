package retrieval

import (
	"fmt"
	"strings"
)

// StressLevel buckets the physiological stress signal.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressNormal   StressLevel = "normal"
	StressElevated StressLevel = "elevated"
	StressHigh     StressLevel = "high"
)

// TimeOfDay buckets the local clock.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Context is the normalized snapshot of the user's physiological and temporal
// state that drives retrieval. It is produced by the caller (the sensor layer
// is a separate system), created fresh per call and never mutated afterwards.
type Context struct {
	StressLevel StressLevel
	TimeOfDay   *TimeOfDay
	IsActive    bool

	// Optional raw signals, informational only.
	HeartRate            *float64
	HeartRateVariability *float64
	ActiveCalories       *float64
	Steps                *int
}

// StressIsElevated reports whether the stress bucket warrants calming content.
func (c Context) StressIsElevated() bool {
	return c.StressLevel == StressElevated || c.StressLevel == StressHigh
}

// PrimaryContext derives the single coarse filtering label. Precedence:
// elevated stress beats time of day beats activity, default "general".
func (c Context) PrimaryContext() string {
	if c.StressIsElevated() {
		return "stress"
	}
	if c.TimeOfDay != nil {
		return string(*c.TimeOfDay)
	}
	if c.IsActive {
		return "active"
	}
	return "general"
}

// Summary renders a human-readable description of the context, used when a
// language model is asked to pick a quote.
func (c Context) Summary() string {
	parts := []string{fmt.Sprintf("stress level: %s", c.StressLevel)}
	if c.TimeOfDay != nil {
		parts = append(parts, fmt.Sprintf("time of day: %s", *c.TimeOfDay))
	}
	if c.IsActive {
		parts = append(parts, "currently physically active")
	} else {
		parts = append(parts, "currently at rest")
	}
	if c.HeartRate != nil {
		parts = append(parts, fmt.Sprintf("heart rate: %.0f bpm", *c.HeartRate))
	}
	if c.HeartRateVariability != nil {
		parts = append(parts, fmt.Sprintf("HRV: %.0f ms", *c.HeartRateVariability))
	}
	return strings.Join(parts, ", ")
}

// TimeOfDayPtr is a convenience for building contexts literally.
func TimeOfDayPtr(t TimeOfDay) *TimeOfDay {
	return &t
}

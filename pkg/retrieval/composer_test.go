package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeIsDeterministic(t *testing.T) {
	contexts := []Context{
		{StressLevel: StressHigh, TimeOfDay: TimeOfDayPtr(Morning)},
		{StressLevel: StressLow},
		{StressLevel: StressNormal, TimeOfDay: TimeOfDayPtr(Night), IsActive: true},
		{StressLevel: StressElevated, IsActive: true},
	}

	for _, rc := range contexts {
		q1, tags1 := Compose(rc)
		q2, tags2 := Compose(rc)
		assert.Equal(t, q1, q2)
		assert.Equal(t, tags1, tags2)
	}
}

func TestComposeHighStressMorning(t *testing.T) {
	rc := Context{
		StressLevel: StressHigh,
		TimeOfDay:   TimeOfDayPtr(Morning),
		IsActive:    false,
	}

	query, tags := Compose(rc)

	assert.Equal(t, "feeling overwhelmed and anxious, starting the day with purpose", query)
	assert.Equal(t, []string{"stress", "elevated"}, tags)
}

func TestComposeFragmentOrder(t *testing.T) {
	rc := Context{
		StressLevel: StressNormal,
		TimeOfDay:   TimeOfDayPtr(Evening),
		IsActive:    true,
	}

	query, tags := Compose(rc)

	assert.Equal(t, "seeking everyday wisdom, reflecting on the day, during physical activity", query)
	assert.Equal(t, []string{"evening"}, tags)
}

func TestComposeNoTimeOfDay(t *testing.T) {
	query, tags := Compose(Context{StressLevel: StressLow})

	assert.Equal(t, "feeling calm and at ease", query)
	assert.Equal(t, []string{"general"}, tags)
}

func TestComposeActiveOnly(t *testing.T) {
	query, tags := Compose(Context{StressLevel: StressNormal, IsActive: true})

	assert.Equal(t, "seeking everyday wisdom, during physical activity", query)
	assert.Equal(t, []string{"active"}, tags)
}

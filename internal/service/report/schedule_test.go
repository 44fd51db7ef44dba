package report

import (
	"testing"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestResolveDaySchedule_NilSchedule(t *testing.T) {
	resolved := ResolveDaySchedule(nil, "monday")

	assert.Equal(t, "09:00", resolved.StartTime)
	assert.Equal(t, "17:00", resolved.EndTime)
}

func TestResolveDaySchedule_DayMissing(t *testing.T) {
	schedule := report.WorkSchedule{
		"monday": map[string]interface{}{"start_time": "08:00", "end_time": "16:00"},
	}

	resolved := ResolveDaySchedule(schedule, "tuesday")

	assert.Equal(t, "09:00", resolved.StartTime)
	assert.Equal(t, "17:00", resolved.EndTime)
}

func TestResolveDaySchedule_ConfiguredDay(t *testing.T) {
	schedule := report.WorkSchedule{
		"friday": map[string]interface{}{"start_time": "07:30", "end_time": "15:30"},
	}

	resolved := ResolveDaySchedule(schedule, "friday")

	assert.Equal(t, "07:30", resolved.StartTime)
	assert.Equal(t, "15:30", resolved.EndTime)
}

func TestResolveDaySchedule_PartialEntryFillsMissingSide(t *testing.T) {
	schedule := report.WorkSchedule{
		"monday": map[string]interface{}{"start_time": "10:00"},
	}

	resolved := ResolveDaySchedule(schedule, "monday")

	assert.Equal(t, "10:00", resolved.StartTime)
	assert.Equal(t, "17:00", resolved.EndTime)
}

func TestResolveDaySchedule_MalformedEntries(t *testing.T) {
	cases := []struct {
		name     string
		schedule report.WorkSchedule
	}{
		{"entry is not a map", report.WorkSchedule{"monday": "09:00-17:00"}},
		{"times are not strings", report.WorkSchedule{"monday": map[string]interface{}{"start_time": 9, "end_time": 17}}},
		{"times are not HH:MM", report.WorkSchedule{"monday": map[string]interface{}{"start_time": "9am", "end_time": "25:00"}}},
		{"entry is nil", report.WorkSchedule{"monday": nil}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resolved := ResolveDaySchedule(c.schedule, "monday")

			assert.Equal(t, "09:00", resolved.StartTime)
			assert.Equal(t, "17:00", resolved.EndTime)
		})
	}
}

func TestIsWorkDay_DefaultMondayToFriday(t *testing.T) {
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		assert.True(t, IsWorkDay(nil, day), day)
	}
	assert.False(t, IsWorkDay(nil, "saturday"))
	assert.False(t, IsWorkDay([]string{}, "sunday"))
}

func TestIsWorkDay_ConfiguredList(t *testing.T) {
	weekendsOnly := []string{"saturday", "sunday"}

	assert.True(t, IsWorkDay(weekendsOnly, "saturday"))
	assert.True(t, IsWorkDay(weekendsOnly, "sunday"))
	assert.False(t, IsWorkDay(weekendsOnly, "monday"))
}

package report

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

const (
	defaultStartTime = "09:00"
	defaultEndTime   = "17:00"
)

var defaultWorkDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ResolveDaySchedule returns the expected start and end time for the given
// weekday. Missing or malformed configuration never fails: whatever cannot be
// read from the schedule falls back to 09:00-17:00, per side, so a partial
// entry keeps its valid half.
func ResolveDaySchedule(schedule report.WorkSchedule, dayName string) report.DaySchedule {
	resolved := report.DaySchedule{StartTime: defaultStartTime, EndTime: defaultEndTime}

	if schedule == nil {
		return resolved
	}

	entry, ok := schedule[dayName].(map[string]interface{})
	if !ok {
		return resolved
	}

	if start, ok := entry["start_time"].(string); ok && timeOfDayRegex.MatchString(start) {
		resolved.StartTime = start
	}
	if end, ok := entry["end_time"].(string); ok && timeOfDayRegex.MatchString(end) {
		resolved.EndTime = end
	}

	return resolved
}

// IsWorkDay reports whether attendance is expected on the given weekday. An
// empty work-day list means the Monday-Friday default applies.
func IsWorkDay(workDays []string, dayName string) bool {
	if len(workDays) == 0 {
		return validator.IsInSlice(dayName, defaultWorkDays)
	}
	return validator.IsInSlice(dayName, workDays)
}

func weekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

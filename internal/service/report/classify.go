package report

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
)

type dayKind int

const (
	kindNonWorkDay dayKind = iota
	kindOnLeave
	kindPresent
	kindAbsent
	kindFuture
)

// dayClass is the single classification of one calendar day, shared by the
// statistics aggregator and the calendar builder. future is tracked
// independently of kind: the aggregator only uses it to guard the absent
// bucket, while the calendar blanks every future day except non-work ones.
type dayClass struct {
	kind   dayKind
	future bool

	leaveType report.LeaveType

	lateMinutes     int
	complete        bool
	workMinutes     int
	overtimeMinutes int
}

// classifyDay assigns exactly one kind to a calendar day. Precedence: non-work
// day, approved leave, attendance with clock-in, then future/absent. today is
// the reference date at local midnight.
func classifyDay(
	day time.Time,
	employee report.Employee,
	leaveIndex map[string]report.LeaveType,
	attendanceIndex map[string]report.AttendanceRecord,
	today time.Time,
) dayClass {
	cls := dayClass{future: day.After(today)}
	name := weekdayName(day)

	if !IsWorkDay(employee.WorkDays, name) {
		cls.kind = kindNonWorkDay
		return cls
	}

	key := day.Format(dateKeyLayout)

	if leaveType, ok := leaveIndex[key]; ok {
		cls.kind = kindOnLeave
		cls.leaveType = leaveType
		return cls
	}

	if record, ok := attendanceIndex[key]; ok {
		cls.kind = kindPresent
		schedule := ResolveDaySchedule(employee.WorkSchedule, name)
		startMinute := minuteOfDay(schedule.StartTime)
		endMinute := minuteOfDay(schedule.EndTime)

		clockInMinute := record.ClockIn.Hour()*60 + record.ClockIn.Minute()
		if clockInMinute > startMinute {
			cls.lateMinutes = clockInMinute - startMinute
		}

		if record.ClockOut != nil {
			cls.complete = true
			clockOutMinute := record.ClockOut.Hour()*60 + record.ClockOut.Minute()
			cls.workMinutes = clockOutMinute - clockInMinute
			// Early checkout makes this negative; summed as-is.
			cls.overtimeMinutes = clockOutMinute - endMinute
		}
		return cls
	}

	if cls.future {
		cls.kind = kindFuture
		return cls
	}

	cls.kind = kindAbsent
	return cls
}

// minuteOfDay converts an "HH:MM" string to minutes since midnight. Inputs
// come from ResolveDaySchedule, which only emits well-formed times.
func minuteOfDay(hhmm string) int {
	hours, _ := strconv.Atoi(hhmm[:2])
	minutes, _ := strconv.Atoi(hhmm[3:])
	return hours*60 + minutes
}

package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
)

// Legend codes of the printed report template. The template defines "A" as
// present and "P" as absent; downstream stylesheets key on these exact codes.
const (
	StatusEmpty           = ""
	StatusPresent         = "A"
	StatusLate            = "TR"
	StatusAbsent          = "P"
	StatusSickLeave       = "SL"
	StatusAnnualLeave     = "AN"
	StatusPermissionLeave = "AS"
)

// BuildAttendanceCalendar produces one entry per day of the month in
// descending day order, the order the report template renders them in.
func BuildAttendanceCalendar(
	employee report.Employee,
	attendance []report.AttendanceRecord,
	leaves []report.LeaveRecord,
	year, month int,
	now time.Time,
) []report.CalendarDayEntry {
	leaveIndex := BuildLeaveIndex(leaves)
	attendanceIndex := BuildAttendanceIndex(attendance)
	today := dateOnly(now)

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	totalDays := firstOfMonth.AddDate(0, 1, -1).Day()

	entries := make([]report.CalendarDayEntry, 0, totalDays)
	for day := totalDays; day >= 1; day-- {
		date := firstOfMonth.AddDate(0, 0, day-1)
		cls := classifyDay(date, employee, leaveIndex, attendanceIndex, today)

		status := StatusEmpty
		switch {
		case cls.kind == kindNonWorkDay:
		case cls.future:
			// future work days stay blank, even when a leave is booked
		case cls.kind == kindOnLeave:
			status = leaveStatusCode(cls.leaveType)
		case cls.kind == kindPresent:
			if cls.lateMinutes > 0 {
				status = StatusLate
			} else {
				status = StatusPresent
			}
		default:
			status = StatusAbsent
		}

		entries = append(entries, report.CalendarDayEntry{
			Day:       day,
			Status:    status,
			ClassName: statusClassName(status),
		})
	}

	return entries
}

// leaveStatusCode maps a leave type to its template code. The template only
// distinguishes sick, annual and permission columns; every other type renders
// in the sick-leave column.
func leaveStatusCode(leaveType report.LeaveType) string {
	switch leaveType {
	case report.LeaveTypeVacation:
		return StatusAnnualLeave
	case report.LeaveTypePermission:
		return StatusPermissionLeave
	default:
		return StatusSickLeave
	}
}

func statusClassName(status string) string {
	switch status {
	case StatusPresent:
		return "present"
	case StatusLate:
		return "late"
	case StatusAbsent:
		return "absent"
	case StatusSickLeave:
		return "sick-leave"
	case StatusAnnualLeave:
		return "annual-leave"
	case StatusPermissionLeave:
		return "permission-leave"
	default:
		return "empty"
	}
}

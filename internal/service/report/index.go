package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
)

const dateKeyLayout = "2006-01-02"

// BuildLeaveIndex maps every calendar date covered by an approved leave to its
// leave type. Ranges expand forward inclusively, so a reversed range covers
// nothing. When approved leaves overlap, the later record in input order wins.
func BuildLeaveIndex(leaves []report.LeaveRecord) map[string]report.LeaveType {
	index := make(map[string]report.LeaveType)

	for _, leave := range leaves {
		if leave.Status != report.LeaveStatusApproved {
			continue
		}

		start := dateOnly(leave.StartDate)
		end := dateOnly(leave.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			index[d.Format(dateKeyLayout)] = leave.Type
		}
	}

	return index
}

// BuildAttendanceIndex maps calendar dates to their attendance record. Records
// without a clock-in are excluded entirely, even when a clock-out exists; the
// day later classifies as absent. Duplicate dates keep the last record.
func BuildAttendanceIndex(records []report.AttendanceRecord) map[string]report.AttendanceRecord {
	index := make(map[string]report.AttendanceRecord)

	for _, record := range records {
		if record.ClockIn == nil {
			continue
		}
		index[record.Date.Format(dateKeyLayout)] = record
	}

	return index
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

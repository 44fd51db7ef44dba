package report

import (
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
)

// ComputeMonthlyStatistics walks every day of the month in ascending order and
// aggregates it into the monthly buckets. The function is pure: now only
// anchors the future-date rule (future work days are pending, never absent).
func ComputeMonthlyStatistics(
	employee report.Employee,
	attendance []report.AttendanceRecord,
	leaves []report.LeaveRecord,
	year, month int,
	now time.Time,
) report.MonthlyStatistics {
	leaveIndex := BuildLeaveIndex(leaves)
	attendanceIndex := BuildAttendanceIndex(attendance)
	today := dateOnly(now)

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	totalDays := firstOfMonth.AddDate(0, 1, -1).Day()

	stats := report.MonthlyStatistics{
		TotalDays:   totalDays,
		LeaveByType: make(map[string]report.LeaveTypeSummary),
	}

	for day := 1; day <= totalDays; day++ {
		date := firstOfMonth.AddDate(0, 0, day-1)
		cls := classifyDay(date, employee, leaveIndex, attendanceIndex, today)

		if cls.kind == kindNonWorkDay {
			stats.NonWorkingDays++
			continue
		}
		stats.WorkingDays++

		switch cls.kind {
		case kindOnLeave:
			// counted in the per-type breakdown below
		case kindPresent:
			stats.PresentDays++
			if cls.lateMinutes > 0 {
				stats.LateDays++
				stats.TotalLateMinutes += cls.lateMinutes
			}
			if cls.complete {
				stats.CompleteDays++
				stats.TotalWorkMinutes += cls.workMinutes
				stats.TotalOvertimeMinutes += cls.overtimeMinutes
			}
		case kindAbsent:
			stats.AbsentDays++
		case kindFuture:
			// pending work day, counts toward nothing
		}
	}

	for _, leave := range leaves {
		if leave.Status != report.LeaveStatusApproved {
			continue
		}
		summary := stats.LeaveByType[string(leave.Type)]
		summary.Count++
		summary.Days += leave.Days
		stats.LeaveByType[string(leave.Type)] = summary

		stats.ApprovedLeaveCount++
		stats.ApprovedLeaveDays += leave.Days
	}

	if stats.LateDays > 0 {
		stats.AverageLateMinutes = roundDiv(stats.TotalLateMinutes, stats.LateDays)
	}
	if stats.CompleteDays > 0 {
		stats.AverageWorkMinutes = roundDiv(stats.TotalWorkMinutes, stats.CompleteDays)
		stats.AverageOvertimeMinutes = roundDiv(stats.TotalOvertimeMinutes, stats.CompleteDays)
	}

	stats.PaidDays = float64(stats.PresentDays) + stats.ApprovedLeaveDays

	return stats
}

func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}

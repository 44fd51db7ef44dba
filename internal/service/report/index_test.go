package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func testClock(year int, month time.Month, day, hour, minute int) *time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.Local)
	return &t
}

func TestBuildLeaveIndex_ApprovedOnly(t *testing.T) {
	leaves := []report.LeaveRecord{
		{Type: report.LeaveTypeSick, Status: report.LeaveStatusPending, StartDate: testDate(2025, 9, 1), EndDate: testDate(2025, 9, 2)},
		{Type: report.LeaveTypeVacation, Status: report.LeaveStatusRejected, StartDate: testDate(2025, 9, 3), EndDate: testDate(2025, 9, 3)},
		{Type: report.LeaveTypePermission, Status: report.LeaveStatusApproved, StartDate: testDate(2025, 9, 5), EndDate: testDate(2025, 9, 5)},
	}

	index := BuildLeaveIndex(leaves)

	assert.Len(t, index, 1)
	assert.Equal(t, report.LeaveTypePermission, index["2025-09-05"])
}

func TestBuildLeaveIndex_InclusiveRangeExpansion(t *testing.T) {
	leaves := []report.LeaveRecord{
		{Type: report.LeaveTypeVacation, Status: report.LeaveStatusApproved, StartDate: testDate(2025, 9, 10), EndDate: testDate(2025, 9, 12)},
	}

	index := BuildLeaveIndex(leaves)

	assert.Len(t, index, 3)
	for _, key := range []string{"2025-09-10", "2025-09-11", "2025-09-12"} {
		assert.Equal(t, report.LeaveTypeVacation, index[key], key)
	}
	assert.NotContains(t, index, "2025-09-09")
	assert.NotContains(t, index, "2025-09-13")
}

func TestBuildLeaveIndex_ReversedRangeIsEmpty(t *testing.T) {
	leaves := []report.LeaveRecord{
		{Type: report.LeaveTypeSick, Status: report.LeaveStatusApproved, StartDate: testDate(2025, 9, 12), EndDate: testDate(2025, 9, 10)},
	}

	index := BuildLeaveIndex(leaves)

	assert.Empty(t, index)
}

func TestBuildLeaveIndex_OverlapLastWriteWins(t *testing.T) {
	leaves := []report.LeaveRecord{
		{Type: report.LeaveTypeVacation, Status: report.LeaveStatusApproved, StartDate: testDate(2025, 9, 10), EndDate: testDate(2025, 9, 12)},
		{Type: report.LeaveTypeSick, Status: report.LeaveStatusApproved, StartDate: testDate(2025, 9, 12), EndDate: testDate(2025, 9, 13)},
	}

	index := BuildLeaveIndex(leaves)

	assert.Equal(t, report.LeaveTypeVacation, index["2025-09-11"])
	assert.Equal(t, report.LeaveTypeSick, index["2025-09-12"])
	assert.Equal(t, report.LeaveTypeSick, index["2025-09-13"])
}

func TestBuildAttendanceIndex_RequiresClockIn(t *testing.T) {
	records := []report.AttendanceRecord{
		{Date: testDate(2025, 9, 1), ClockIn: testClock(2025, 9, 1, 9, 0), ClockOut: testClock(2025, 9, 1, 17, 0)},
		{Date: testDate(2025, 9, 2), ClockIn: nil, ClockOut: testClock(2025, 9, 2, 17, 0)},
		{Date: testDate(2025, 9, 3), ClockIn: nil, ClockOut: nil},
	}

	index := BuildAttendanceIndex(records)

	assert.Len(t, index, 1)
	assert.Contains(t, index, "2025-09-01")
	// clock-out without clock-in is excluded entirely
	assert.NotContains(t, index, "2025-09-02")
	assert.NotContains(t, index, "2025-09-03")
}

func TestBuildAttendanceIndex_DuplicateDateLastWins(t *testing.T) {
	records := []report.AttendanceRecord{
		{ID: "first", Date: testDate(2025, 9, 1), ClockIn: testClock(2025, 9, 1, 8, 0)},
		{ID: "second", Date: testDate(2025, 9, 1), ClockIn: testClock(2025, 9, 1, 9, 30)},
	}

	index := BuildAttendanceIndex(records)

	assert.Len(t, index, 1)
	assert.Equal(t, "second", index["2025-09-01"].ID)
}

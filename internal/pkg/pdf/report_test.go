package pdf

import (
	"testing"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMonthlyReport(t *testing.T) {
	monthlyReport := report.MonthlyReport{
		ReportID:     "00000000-0000-0000-0000-000000000000",
		EmployeeID:   "emp-1",
		EmployeeName: "Test Employee",
		EmployeeCode: "0001-0001",
		PeriodMonth:  9,
		PeriodYear:   2025,
		PeriodStart:  "2025-09-01",
		PeriodEnd:    "2025-09-30",
		GeneratedAt:  "2025-10-15T12:00:00Z",
		Statistics: report.MonthlyStatistics{
			TotalDays:      30,
			WorkingDays:    22,
			NonWorkingDays: 8,
			PresentDays:    20,
			AbsentDays:     1,
			LeaveByType: map[string]report.LeaveTypeSummary{
				"vacation": {Count: 1, Days: 1},
			},
			ApprovedLeaveCount: 1,
			ApprovedLeaveDays:  1,
			PaidDays:           21,
		},
		Calendar: []report.CalendarDayEntry{
			{Day: 3, Status: "A", ClassName: "present"},
			{Day: 2, Status: "TR", ClassName: "late"},
			{Day: 1, Status: "", ClassName: "empty"},
		},
	}

	document, err := RenderMonthlyReport(monthlyReport)

	require.NoError(t, err)
	assert.NotEmpty(t, document)
	// PDF magic bytes
	assert.Equal(t, "%PDF", string(document[:4]))
}

package pdf

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// statusLabels maps the calendar legend codes to the labels printed in the
// PDF grid. Codes come from the report template and are not changed here.
var statusLabels = map[string]string{
	"A":  "Present",
	"TR": "Late",
	"P":  "Absent",
	"SL": "Sick",
	"AN": "Annual",
	"AS": "Permission",
}

// RenderMonthlyReport lays out the monthly attendance report as an A4 PDF and
// returns the document bytes.
func RenderMonthlyReport(monthlyReport report.MonthlyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addHeader(m, monthlyReport)
	addSummary(m, monthlyReport.Statistics)
	addLeaveBreakdown(m, monthlyReport.Statistics)
	addCalendarGrid(m, monthlyReport.Calendar)
	registerFooter(m, monthlyReport)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF document: %w", err)
	}

	return document.GetBytes(), nil
}

func addHeader(m core.Maroto, monthlyReport report.MonthlyReport) {
	period := time.Date(monthlyReport.PeriodYear, time.Month(monthlyReport.PeriodMonth), 1, 0, 0, 0, 0, time.Local)

	m.AddRow(10,
		text.NewCol(12, "Monthly Attendance Report",
			props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
	)
	m.AddRow(7,
		text.NewCol(12, fmt.Sprintf("%s (%s)", monthlyReport.EmployeeName, monthlyReport.EmployeeCode),
			props.Text{
				Size:  11,
				Align: align.Center,
			}),
	)
	m.AddRow(6,
		text.NewCol(12, period.Format("January 2006"),
			props.Text{
				Size:  10,
				Align: align.Center,
			}),
	)
	m.AddRow(4,
		line.NewCol(12),
	)
	m.AddRow(3)
}

func addSummary(m core.Maroto, stats report.MonthlyStatistics) {
	m.AddRow(7,
		text.NewCol(12, "Summary",
			props.Text{
				Size:  11,
				Style: fontstyle.Bold,
			}),
	)

	addSummaryRow(m, "Working days", fmt.Sprintf("%d of %d", stats.WorkingDays, stats.TotalDays))
	addSummaryRow(m, "Present", fmt.Sprintf("%d", stats.PresentDays))
	addSummaryRow(m, "Absent", fmt.Sprintf("%d", stats.AbsentDays))
	addSummaryRow(m, "Late arrivals", fmt.Sprintf("%d (%d min total, %d min avg)",
		stats.LateDays, stats.TotalLateMinutes, stats.AverageLateMinutes))
	addSummaryRow(m, "Work time", fmt.Sprintf("%s total, %s avg over %d complete days",
		formatMinutes(stats.TotalWorkMinutes), formatMinutes(stats.AverageWorkMinutes), stats.CompleteDays))
	addSummaryRow(m, "Overtime", fmt.Sprintf("%s total, %s avg",
		formatMinutes(stats.TotalOvertimeMinutes), formatMinutes(stats.AverageOvertimeMinutes)))
	addSummaryRow(m, "Paid days", fmt.Sprintf("%.1f", stats.PaidDays))

	m.AddRow(3)
}

func addSummaryRow(m core.Maroto, label, value string) {
	m.AddRow(6,
		text.NewCol(5, label,
			props.Text{
				Size: 9,
			}),
		text.NewCol(7, value,
			props.Text{
				Size:  9,
				Align: align.Right,
			}),
	)
}

func addLeaveBreakdown(m core.Maroto, stats report.MonthlyStatistics) {
	if stats.ApprovedLeaveCount == 0 {
		return
	}

	m.AddRow(7,
		text.NewCol(12, "Approved Leave",
			props.Text{
				Size:  11,
				Style: fontstyle.Bold,
			}),
	)

	leaveTypes := make([]string, 0, len(stats.LeaveByType))
	for leaveType := range stats.LeaveByType {
		leaveTypes = append(leaveTypes, leaveType)
	}
	sort.Strings(leaveTypes)
	for _, leaveType := range leaveTypes {
		summary := stats.LeaveByType[leaveType]
		addSummaryRow(m, leaveType, fmt.Sprintf("%d request(s), %.1f day(s)", summary.Count, summary.Days))
	}
	addSummaryRow(m, "Total", fmt.Sprintf("%d request(s), %.1f day(s)", stats.ApprovedLeaveCount, stats.ApprovedLeaveDays))

	m.AddRow(3)
}

func addCalendarGrid(m core.Maroto, calendar []report.CalendarDayEntry) {
	m.AddRow(7,
		text.NewCol(12, "Calendar",
			props.Text{
				Size:  11,
				Style: fontstyle.Bold,
			}),
	)

	// Six entries per row, descending day order as delivered by the builder.
	const perRow = 6
	for start := 0; start < len(calendar); start += perRow {
		end := start + perRow
		if end > len(calendar) {
			end = len(calendar)
		}

		cols := make([]core.Col, 0, perRow)
		for _, entry := range calendar[start:end] {
			label := statusLabels[entry.Status]
			if label == "" {
				label = "-"
			}
			cols = append(cols,
				text.NewCol(2, fmt.Sprintf("%d  %s", entry.Day, label),
					props.Text{
						Size:  8,
						Align: align.Left,
					}),
			)
		}
		m.AddRow(5, cols...)
	}
}

func registerFooter(m core.Maroto, monthlyReport report.MonthlyReport) {
	m.RegisterFooter(
		row.New(4).Add(
			col.New(12).Add(
				line.New(),
			),
		),
		row.New(6).Add(
			text.NewCol(12, fmt.Sprintf("Report %s, generated at %s", monthlyReport.ReportID, monthlyReport.GeneratedAt),
				props.Text{
					Size:  7,
					Align: align.Center,
				}),
		),
	)
}

func formatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh %02dm", sign, minutes/60, minutes%60)
}

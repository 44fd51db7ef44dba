package report

import "context"

// ReportService defines the interface for monthly report generation
type ReportService interface {
	// Generate the monthly attendance report (statistics + calendar)
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// Render the monthly attendance report as a PDF document
	RenderMonthlyReportPDF(ctx context.Context, req MonthlyReportRequest) ([]byte, error)
}

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/pdf"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	employeeRepo   report.EmployeeRepository
	attendanceRepo report.AttendanceRepository
	leaveRepo      report.LeaveRepository
}

func NewReportService(
	employeeRepo report.EmployeeRepository,
	attendanceRepo report.AttendanceRepository,
	leaveRepo report.LeaveRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ReportServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GenerateMonthlyReport fetches the employee snapshot for the period and
// computes statistics and calendar from it. Nothing is persisted; the same
// input snapshot always produces the same report body.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.Local)
	periodEnd := periodStart.AddDate(0, 1, -1)

	employee, err := s.employeeRepo.GetByID(ctx, companyID, req.EmployeeID)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	attendance, err := s.attendanceRepo.ListByEmployeeAndPeriod(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get attendance logs: %w", err)
	}

	leaves, err := s.leaveRepo.ListByEmployeeAndPeriod(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get leave records: %w", err)
	}

	now := time.Now()
	statistics := ComputeMonthlyStatistics(employee, attendance, leaves, req.Year, req.Month, now)
	calendar := BuildAttendanceCalendar(employee, attendance, leaves, req.Year, req.Month, now)

	return report.MonthlyReport{
		ReportID:     uuid.NewString(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.FullName,
		EmployeeCode: employee.EmployeeCode,
		Position:     employee.Position,
		PeriodMonth:  req.Month,
		PeriodYear:   req.Year,
		PeriodStart:  periodStart.Format("2006-01-02"),
		PeriodEnd:    periodEnd.Format("2006-01-02"),
		GeneratedAt:  now.Format(time.RFC3339),
		Statistics:   statistics,
		Calendar:     calendar,
	}, nil
}

// RenderMonthlyReportPDF generates the monthly report and renders it as a PDF
// document for download.
func (s *ReportServiceImpl) RenderMonthlyReportPDF(ctx context.Context, req report.MonthlyReportRequest) ([]byte, error) {
	monthlyReport, err := s.GenerateMonthlyReport(ctx, req)
	if err != nil {
		return nil, err
	}

	document, err := pdf.RenderMonthlyReport(monthlyReport)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrPDFRenderFailed, err)
	}

	return document, nil
}

package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employee report.Employee
	err      error
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, companyID, employeeID string) (report.Employee, error) {
	return s.employee, s.err
}

type stubAttendanceRepo struct {
	records []report.AttendanceRecord
	err     error
}

func (s *stubAttendanceRepo) ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]report.AttendanceRecord, error) {
	return s.records, s.err
}

type stubLeaveRepo struct {
	records []report.LeaveRecord
	err     error
}

func (s *stubLeaveRepo) ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]report.LeaveRecord, error) {
	return s.records, s.err
}

func authedContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"company_id": companyID,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestReportService_GenerateMonthlyReport_Success(t *testing.T) {
	employee := testEmployee()
	svc := NewReportService(
		&stubEmployeeRepo{employee: employee},
		&stubAttendanceRepo{records: []report.AttendanceRecord{
			{Date: testDate(2025, 9, 2), ClockIn: testClock(2025, 9, 2, 9, 15), ClockOut: testClock(2025, 9, 2, 17, 30)},
		}},
		&stubLeaveRepo{records: []report.LeaveRecord{
			{Type: report.LeaveTypeVacation, Status: report.LeaveStatusApproved, StartDate: testDate(2025, 9, 10), EndDate: testDate(2025, 9, 12), Days: 3},
		}},
	)

	ctx := authedContext(t, "co-1")
	result, err := svc.GenerateMonthlyReport(ctx, report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      9,
		Year:       2025,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ReportID)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, "Test Employee", result.EmployeeName)
	assert.Equal(t, "2025-09-01", result.PeriodStart)
	assert.Equal(t, "2025-09-30", result.PeriodEnd)
	assert.Len(t, result.Calendar, 30)
	assert.Equal(t, 30, result.Statistics.TotalDays)
	assert.Equal(t, 1, result.Statistics.PresentDays)
	assert.Equal(t, float64(4), result.Statistics.PaidDays)
}

func TestReportService_GenerateMonthlyReport_ValidationError(t *testing.T) {
	svc := NewReportService(&stubEmployeeRepo{}, &stubAttendanceRepo{}, &stubLeaveRepo{})

	_, err := svc.GenerateMonthlyReport(authedContext(t, "co-1"), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      13,
		Year:       2025,
	})

	assert.Error(t, err)
}

func TestReportService_GenerateMonthlyReport_MissingCompanyClaim(t *testing.T) {
	svc := NewReportService(&stubEmployeeRepo{}, &stubAttendanceRepo{}, &stubLeaveRepo{})

	_, err := svc.GenerateMonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      9,
		Year:       2025,
	})

	assert.Error(t, err)
}

func TestReportService_GenerateMonthlyReport_EmployeeNotFound(t *testing.T) {
	svc := NewReportService(
		&stubEmployeeRepo{err: report.ErrEmployeeNotFound},
		&stubAttendanceRepo{},
		&stubLeaveRepo{},
	)

	_, err := svc.GenerateMonthlyReport(authedContext(t, "co-1"), report.MonthlyReportRequest{
		EmployeeID: "missing",
		Month:      9,
		Year:       2025,
	})

	assert.ErrorIs(t, err, report.ErrEmployeeNotFound)
}

func TestReportService_RenderMonthlyReportPDF(t *testing.T) {
	svc := NewReportService(
		&stubEmployeeRepo{employee: testEmployee()},
		&stubAttendanceRepo{},
		&stubLeaveRepo{},
	)

	document, err := svc.RenderMonthlyReportPDF(authedContext(t, "co-1"), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      9,
		Year:       2025,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, document)
}

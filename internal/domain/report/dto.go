package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveTypeSummary is the per-category breakdown of approved leaves.
type LeaveTypeSummary struct {
	Count int     `json:"count"`
	Days  float64 `json:"days"`
}

type MonthlyStatistics struct {
	TotalDays      int `json:"total_days"`
	WorkingDays    int `json:"working_days"`
	NonWorkingDays int `json:"non_working_days"`
	PresentDays    int `json:"present_days"`
	AbsentDays     int `json:"absent_days"`

	LeaveByType        map[string]LeaveTypeSummary `json:"leave_by_type"`
	ApprovedLeaveCount int                         `json:"approved_leave_count"`
	ApprovedLeaveDays  float64                     `json:"approved_leave_days"`

	LateDays           int `json:"late_days"`
	TotalLateMinutes   int `json:"total_late_minutes"`
	AverageLateMinutes int `json:"average_late_minutes"`

	CompleteDays       int `json:"complete_days"`
	TotalWorkMinutes   int `json:"total_work_minutes"`
	AverageWorkMinutes int `json:"average_work_minutes"`

	TotalOvertimeMinutes   int `json:"total_overtime_minutes"`
	AverageOvertimeMinutes int `json:"average_overtime_minutes"`

	PaidDays float64 `json:"paid_days"`
}

// CalendarDayEntry is one cell of the report calendar. Status carries the
// report template's legend codes; ClassName is the matching stylesheet class.
type CalendarDayEntry struct {
	Day       int    `json:"day"`
	Status    string `json:"status"`
	ClassName string `json:"class_name"`
}

type MonthlyReport struct {
	ReportID     string  `json:"report_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	Position     *string `json:"position,omitempty"`

	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Statistics MonthlyStatistics  `json:"statistics"`
	Calendar   []CalendarDayEntry `json:"calendar"`
}

package report

import (
	"context"
	"time"
)

// EmployeeRepository supplies the employee profile the report is computed for.
type EmployeeRepository interface {
	GetByID(ctx context.Context, companyID, employeeID string) (Employee, error)
}

// AttendanceRepository supplies attendance logs for a period.
type AttendanceRepository interface {
	ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]AttendanceRecord, error)
}

// LeaveRepository supplies leave requests overlapping a period, in any status.
// Filtering to approved leaves happens in the report engine.
type LeaveRepository interface {
	ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]LeaveRecord, error)
}

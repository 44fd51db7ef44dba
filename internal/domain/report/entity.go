package report

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type LeaveType string

const (
	LeaveTypeSick       LeaveType = "sick"
	LeaveTypeVacation   LeaveType = "vacation"
	LeaveTypePermission LeaveType = "permission"
	LeaveTypeEmergency  LeaveType = "emergency"
	LeaveTypeUnpaid     LeaveType = "unpaid"
	LeaveTypeOther      LeaveType = "other"
)

type LeaveStatus string

const (
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// WorkSchedule holds the per-weekday expected times as stored in the
// work_schedule JSONB column, keyed by lowercase day name. The shape is
// company-editable and not trusted; resolving a day's times (including
// defaulting for missing or malformed entries) is owned by the report engine.
type WorkSchedule map[string]interface{}

// Value implements driver.Valuer for database storage
func (ws WorkSchedule) Value() (driver.Value, error) {
	if ws == nil {
		return nil, nil
	}
	return json.Marshal(ws)
}

// Scan implements sql.Scanner for database retrieval
func (ws *WorkSchedule) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan WorkSchedule: invalid type")
	}

	return json.Unmarshal(bytes, ws)
}

// DaySchedule is the resolved expected start and end time for a single
// weekday, both in "HH:MM" 24-hour form.
type DaySchedule struct {
	StartTime string
	EndTime   string
}

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Position     *string
	WorkSchedule WorkSchedule
	WorkDays     []string // lowercase day names; empty means Mon-Fri default
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AttendanceRecord is one attendance log row. ClockIn and ClockOut are both
// optional; a record without clock-in is never treated as presence.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
}

// LeaveRecord is a leave request in any status. Days is the declared paid-day
// count, which need not equal the calendar span of the range.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       LeaveType
	Status     LeaveStatus
	StartDate  time.Time
	EndDate    time.Time
	Days       float64
	Reason     *string
	CreatedAt  time.Time
}

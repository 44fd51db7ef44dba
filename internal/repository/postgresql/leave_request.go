package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) report.LeaveRepository {
	return &leaveRepository{db: db}
}

// ListByEmployeeAndPeriod implements report.LeaveRepository. Returns every
// leave request whose range overlaps the period, in any status; the report
// engine filters to approved ones.
func (r *leaveRepository) ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]report.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, leave_type, status,
			   start_date, end_date, total_days, reason, created_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND company_id = $2
		  AND start_date <= $4
		  AND end_date >= $3
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var records []report.LeaveRecord
	for rows.Next() {
		var record report.LeaveRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.CompanyID,
			&record.Type, &record.Status,
			&record.StartDate, &record.EndDate, &record.Days,
			&record.Reason, &record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return records, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) report.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByEmployeeAndPeriod implements report.AttendanceRepository. Rows come
// back in date then insertion order, so when duplicate rows exist for a date
// the last-created one wins at indexing time.
func (r *attendanceRepository) ListByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]report.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, clock_in, clock_out, created_at
		FROM attendances
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var records []report.AttendanceRecord
	for rows.Next() {
		var record report.AttendanceRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.CompanyID,
			&record.Date, &record.ClockIn, &record.ClockOut,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance logs: %w", err)
	}

	return records, nil
}

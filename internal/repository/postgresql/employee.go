package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) report.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements report.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, companyID, employeeID string) (report.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.employee_code, e.full_name, p.name,
			   e.work_schedule, e.work_days,
			   e.created_at, e.updated_at
		FROM employees e
		LEFT JOIN positions p ON e.position_id = p.id
		WHERE e.id = $1
		  AND e.company_id = $2
		  AND e.deleted_at IS NULL
	`

	var emp report.Employee
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName, &emp.Position,
		&emp.WorkSchedule, &emp.WorkDays,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Employee{}, report.ErrEmployeeNotFound
		}
		return report.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flosclinic/attendance-bot/internal/domain/employee"
	"github.com/flosclinic/attendance-bot/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetActiveByLineUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByLineUserID(ctx context.Context, lineUserID string) (employee.Employee, error) {
	query := `
		SELECT id, organization_id, line_user_id, name, employee_number, role, is_active, created_at
		FROM employees
		WHERE line_user_id = $1 AND is_active = TRUE
	`

	var emp employee.Employee
	err := e.db.QueryRow(ctx, query, lineUserID).Scan(
		&emp.ID, &emp.OrganizationID, &emp.LineUserID, &emp.Name,
		&emp.EmployeeNumber, &emp.Role, &emp.IsActive, &emp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by line user id: %w", err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (organization_id, line_user_id, name, employee_number, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, organization_id, line_user_id, name, employee_number, role, is_active, created_at
	`

	var created employee.Employee
	err := e.db.QueryRow(ctx, query,
		newEmployee.OrganizationID, newEmployee.LineUserID, newEmployee.Name,
		newEmployee.EmployeeNumber, newEmployee.Role,
	).Scan(
		&created.ID, &created.OrganizationID, &created.LineUserID, &created.Name,
		&created.EmployeeNumber, &created.Role, &created.IsActive, &created.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

package repository

import (
	"context"
	"time"

	"github.com/ice41/calendario/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, role, department, color, code_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.ID, employee.Name, employee.Email, employee.Role, employee.Department, employee.Color, employee.CodeHash, employee.IsAdmin}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id string) (*domain.Employee, error) {
	query := `
		SELECT name, email, role, department, color, code_hash, is_admin, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.Name, &employee.Email, &employee.Role, &employee.Department, &employee.Color, &employee.CodeHash, &employee.IsAdmin, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetEmployeeByEmail(email string) (*domain.Employee, error) {
	query := `
		SELECT id, name, role, department, color, code_hash, is_admin, created_at, version
		FROM employees WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Email: email,
	}

	dst := []any{&employee.ID, &employee.Name, &employee.Role, &employee.Department, &employee.Color, &employee.CodeHash, &employee.IsAdmin, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, name, email, role, department, color, code_hash, is_admin, created_at, version
		FROM employees
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Name, &employee.Email, &employee.Role, &employee.Department, &employee.Color, &employee.CodeHash, &employee.IsAdmin, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			name = $1,
			email = $2,
			role = $3,
			department = $4,
			color = $5,
			code_hash = $6,
			is_admin = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.Name, employee.Email, employee.Role, employee.Department, employee.Color, employee.CodeHash, employee.IsAdmin, employee.ID, employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

// DeleteEmployee apaga o funcionário e todos os seus registos de férias numa
// única transação, tal como fazia a aplicação original ao remover alguém.
func (r *Repository) DeleteEmployee(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM vacations WHERE employee_id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	query = `DELETE FROM employees WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

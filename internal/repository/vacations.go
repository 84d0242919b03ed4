package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ice41/calendario/internal/domain"
)

func (r *Repository) CreateVacation(vacation *domain.VacationRequest) error {
	query := `
		INSERT INTO vacations (id, employee_id, start_date, end_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{vacation.ID, vacation.EmployeeID, vacation.StartDate, vacation.EndDate, vacation.Status, vacation.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&vacation.CreatedAt, &vacation.Version); err != nil {
		return err
	}

	return nil
}

// CreateVacationsBatch insere vários registos de férias numa única transação:
// ou ficam todos persistidos ou nenhum.
func (r *Repository) CreateVacationsBatch(vacations []*domain.VacationRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO vacations (id, employee_id, start_date, end_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, version
	`

	for _, vacation := range vacations {
		args := []any{vacation.ID, vacation.EmployeeID, vacation.StartDate, vacation.EndDate, vacation.Status, vacation.Notes}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&vacation.CreatedAt, &vacation.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetVacationByID(id string) (*domain.VacationRequest, error) {
	query := `
		SELECT employee_id, start_date, end_date, status, notes, created_at, version
		FROM vacations WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	vacation := &domain.VacationRequest{
		ID: id,
	}

	dst := []any{&vacation.EmployeeID, &vacation.StartDate, &vacation.EndDate, &vacation.Status, &vacation.Notes, &vacation.CreatedAt, &vacation.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return vacation, nil
}

func (r *Repository) GetAllVacations() ([]*domain.VacationRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, status, notes, created_at, version
		FROM vacations
		ORDER BY start_date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacations := make([]*domain.VacationRequest, 0)
	for rows.Next() {
		vacation := &domain.VacationRequest{}
		dst := []any{&vacation.ID, &vacation.EmployeeID, &vacation.StartDate, &vacation.EndDate, &vacation.Status, &vacation.Notes, &vacation.CreatedAt, &vacation.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		vacations = append(vacations, vacation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vacations, nil
}

func (r *Repository) UpdateVacation(vacation *domain.VacationRequest) error {
	query := `
		UPDATE vacations
		SET
			start_date = $1,
			end_date = $2,
			status = $3,
			notes = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{vacation.StartDate, vacation.EndDate, vacation.Status, vacation.Notes, vacation.ID, vacation.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&vacation.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteVacation(id string) error {
	query := `
		DELETE FROM vacations WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

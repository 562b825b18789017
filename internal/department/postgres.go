package department

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"regdesk/pkg/platform/sentinel"
)

// Postgres persists departments in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const departmentColumns = `id, name, entity_id, created_at, updated_at`

func (s *Postgres) Insert(ctx context.Context, d *Department) (*Department, error) {
	query := `
		INSERT INTO departments (name, entity_id)
		VALUES ($1, $2)
		RETURNING ` + departmentColumns
	created, err := scanDepartment(s.db.QueryRowContext(ctx, query, d.Name, d.StaffID))
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}
	return created, nil
}

func (s *Postgres) Update(ctx context.Context, id int64, patch Patch) (*Department, error) {
	query := `
		UPDATE departments SET
			name       = COALESCE($2, name),
			entity_id  = COALESCE($3, entity_id),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + departmentColumns
	updated, err := scanDepartment(s.db.QueryRowContext(ctx, query, id, patch.Name, patch.StaffID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return updated, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	d, err := scanDepartment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return d, nil
}

func (s *Postgres) List(ctx context.Context) ([]*Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []*Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return out, nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanDepartment(row interface{ Scan(dest ...any) error }) (*Department, error) {
	var (
		d       Department
		staffID sql.NullInt64
	)
	if err := row.Scan(&d.ID, &d.Name, &staffID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if staffID.Valid {
		d.StaffID = &staffID.Int64
	}
	return &d, nil
}

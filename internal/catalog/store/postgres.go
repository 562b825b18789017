package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"regdesk/internal/catalog/models"
	"regdesk/pkg/platform/sentinel"
)

// Postgres persists the service catalog in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const serviceColumns = `
	id, service_name, service_type, description, fee, min_duration,
	max_duration, created_at, updated_at`

func (s *Postgres) Insert(ctx context.Context, svc *models.Service) (*models.Service, error) {
	query := `
		INSERT INTO services (
			service_name, service_type, description, fee, min_duration,
			max_duration
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + serviceColumns
	row := s.db.QueryRowContext(ctx, query,
		svc.ServiceName, svc.ServiceType, svc.Description, svc.Fee,
		svc.MinDuration, svc.MaxDuration,
	)
	created, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return created, nil
}

func (s *Postgres) Update(ctx context.Context, id int64, patch models.Patch) (*models.Service, error) {
	query := `
		UPDATE services SET
			service_name = COALESCE($2, service_name),
			service_type = COALESCE($3, service_type),
			description  = COALESCE($4, description),
			fee          = COALESCE($5, fee),
			min_duration = COALESCE($6, min_duration),
			max_duration = COALESCE($7, max_duration),
			updated_at   = now()
		WHERE id = $1
		RETURNING` + serviceColumns
	row := s.db.QueryRowContext(ctx, query, id,
		patch.ServiceName, patch.ServiceType, patch.Description, patch.Fee,
		patch.MinDuration, patch.MaxDuration,
	)
	updated, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return updated, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Service, error) {
	query := `SELECT` + serviceColumns + ` FROM services WHERE id = $1`
	svc, err := scanService(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return svc, nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Service, error) {
	query := `SELECT` + serviceColumns + ` FROM services ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var out []*models.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		out = append(out, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanService(row interface{ Scan(dest ...any) error }) (*models.Service, error) {
	var (
		svc         models.Service
		serviceType sql.NullString
		description sql.NullString
		minDuration sql.NullString
		maxDuration sql.NullString
	)
	err := row.Scan(
		&svc.ID, &svc.ServiceName, &serviceType, &description, &svc.Fee,
		&minDuration, &maxDuration, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	svc.ServiceType = serviceType.String
	svc.Description = description.String
	svc.MinDuration = minDuration.String
	svc.MaxDuration = maxDuration.String
	return &svc, nil
}

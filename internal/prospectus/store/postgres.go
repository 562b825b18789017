package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"regdesk/internal/prospectus/models"
	regmodels "regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

// Postgres persists prospectus rows in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const prospectusColumns = `
	id, date, email, executive_id, reg_id, client_name, phone, department,
	state, tech_person, requirement, proposed_service_period, services,
	isregistered, created_at, updated_at`

func (s *Postgres) Insert(ctx context.Context, p *models.Prospectus) (*models.Prospectus, error) {
	query := `
		INSERT INTO prospectus (
			date, email, executive_id, reg_id, client_name, phone, department,
			state, tech_person, requirement, proposed_service_period, services
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING` + prospectusColumns
	row := s.db.QueryRowContext(ctx, query,
		p.Date, p.Email, p.ExecutiveID, p.RegID, p.ClientName, p.Phone,
		p.Department, p.State, p.TechPerson, p.Requirement,
		p.ProposedServicePeriod, p.Services,
	)
	created, err := scanProspectus(row)
	if err != nil {
		return nil, fmt.Errorf("insert prospectus: %w", err)
	}
	return created, nil
}

func (s *Postgres) Update(ctx context.Context, id int64, patch models.Patch) (*models.Prospectus, error) {
	query := `
		UPDATE prospectus SET
			date                    = COALESCE($2, date),
			email                   = COALESCE($3, email),
			executive_id            = COALESCE($4, executive_id),
			reg_id                  = COALESCE($5, reg_id),
			client_name             = COALESCE($6, client_name),
			phone                   = COALESCE($7, phone),
			department              = COALESCE($8, department),
			state                   = COALESCE($9, state),
			tech_person             = COALESCE($10, tech_person),
			requirement             = COALESCE($11, requirement),
			proposed_service_period = COALESCE($12, proposed_service_period),
			services                = COALESCE($13, services),
			updated_at              = now()
		WHERE id = $1
		RETURNING` + prospectusColumns
	row := s.db.QueryRowContext(ctx, query, id,
		patch.Date, patch.Email, patch.ExecutiveID, patch.RegID,
		patch.ClientName, patch.Phone, patch.Department, patch.State,
		patch.TechPerson, patch.Requirement, patch.ProposedServicePeriod,
		patch.Services,
	)
	updated, err := scanProspectus(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update prospectus: %w", err)
	}
	return updated, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Prospectus, error) {
	query := `SELECT` + prospectusColumns + ` FROM prospectus WHERE id = $1`
	p, err := scanProspectus(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find prospectus: %w", err)
	}
	return p, nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Prospectus, error) {
	query := `SELECT` + prospectusColumns + ` FROM prospectus ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prospectus: %w", err)
	}
	defer rows.Close()

	var out []*models.Prospectus
	for rows.Next() {
		p, err := scanProspectus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospectus: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prospectus: %w", err)
	}
	return out, nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM prospectus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prospectus: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) SetRegistered(ctx context.Context, prospectusID int64, registered bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE prospectus SET isregistered = $2, updated_at = now() WHERE id = $1`,
		prospectusID, registered,
	)
	if err != nil {
		return fmt.Errorf("set prospectus registered flag: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) FindSummary(ctx context.Context, prospectusID int64) (*regmodels.ProspectusSummary, error) {
	var summary regmodels.ProspectusSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT id, reg_id, client_name, email, isregistered FROM prospectus WHERE id = $1`,
		prospectusID,
	).Scan(&summary.ID, &summary.RegID, &summary.ClientName, &summary.Email, &summary.IsRegistered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find prospectus summary: %w", err)
	}
	return &summary, nil
}

func scanProspectus(row interface{ Scan(dest ...any) error }) (*models.Prospectus, error) {
	var (
		p           models.Prospectus
		executiveID sql.NullInt64
	)
	err := row.Scan(
		&p.ID, &p.Date, &p.Email, &executiveID, &p.RegID, &p.ClientName,
		&p.Phone, &p.Department, &p.State, &p.TechPerson, &p.Requirement,
		&p.ProposedServicePeriod, &p.Services, &p.IsRegistered, &p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if executiveID.Valid {
		p.ExecutiveID = &executiveID.Int64
	}
	return &p, nil
}

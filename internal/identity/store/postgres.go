package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"regdesk/internal/identity/models"
	"regdesk/pkg/platform/sentinel"
)

// Postgres persists staff identities in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) InsertExecutive(ctx context.Context, exec *models.Executive) (*models.Executive, error) {
	query := `
		INSERT INTO executives (username, email, password_hash, entity_type, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password_hash, entity_type, role_id,
			created_at, updated_at`
	row := s.db.QueryRowContext(ctx, query,
		exec.Username, exec.Email, exec.PasswordHash, exec.EntityType, exec.RoleID,
	)
	created, err := scanExecutive(row)
	if err != nil {
		return nil, fmt.Errorf("insert executive: %w", err)
	}
	return created, nil
}

func (s *Postgres) FindExecutiveByUsername(ctx context.Context, username string) (*models.Executive, error) {
	query := `
		SELECT id, username, email, password_hash, entity_type, role_id,
			created_at, updated_at
		FROM executives WHERE username = $1`
	exec, err := scanExecutive(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find executive: %w", err)
	}
	return exec, nil
}

func (s *Postgres) FindRole(ctx context.Context, id int64) (*models.Role, error) {
	var role models.Role
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM roles WHERE id = $1`, id,
	).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.description
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.id`, id)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		role.Permissions = append(role.Permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	return &role, nil
}

func scanExecutive(row interface{ Scan(dest ...any) error }) (*models.Executive, error) {
	var (
		exec   models.Executive
		roleID sql.NullInt64
	)
	err := row.Scan(
		&exec.ID, &exec.Username, &exec.Email, &exec.PasswordHash,
		&exec.EntityType, &roleID, &exec.CreatedAt, &exec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if roleID.Valid {
		exec.RoleID = &roleID.Int64
	}
	return &exec, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

// PostgresRegistrations persists registration rows in PostgreSQL. The store
// is pure I/O; saga ordering and compensation belong to the coordinator.
type PostgresRegistrations struct {
	db *sql.DB
}

func NewPostgresRegistrations(db *sql.DB) *PostgresRegistrations {
	return &PostgresRegistrations{db: db}
}

const registrationColumns = `
	id, prospectus_id, services, init_amount, accept_amount, discount,
	total_amount, accept_period, pub_period, bank_id, status, month, year,
	assigned_to, admin_assigned, transaction_id, notes, registered_by,
	client_id, created_at, updated_at`

func (s *PostgresRegistrations) Insert(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	query := `
		INSERT INTO registration (
			prospectus_id, services, init_amount, accept_amount, discount,
			total_amount, accept_period, pub_period, bank_id, status, month,
			year, assigned_to, admin_assigned, transaction_id, notes,
			registered_by, client_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING` + registrationColumns
	row := s.db.QueryRowContext(ctx, query,
		reg.ProspectusID, reg.Services, reg.InitAmount, reg.AcceptAmount,
		reg.Discount, reg.TotalAmount, reg.AcceptPeriod, reg.PubPeriod,
		reg.BankID, reg.Status, reg.Month, reg.Year, reg.AssignedTo,
		reg.AdminAssigned, reg.TransactionID, reg.Notes, reg.RegisteredBy,
		reg.ClientID,
	)
	created, err := scanRegistration(row)
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return created, nil
}

func (s *PostgresRegistrations) Update(ctx context.Context, id int64, patch models.RegistrationPatch) (*models.Registration, error) {
	query := `
		UPDATE registration SET
			services       = COALESCE($2, services),
			init_amount    = COALESCE($3, init_amount),
			accept_amount  = COALESCE($4, accept_amount),
			discount       = COALESCE($5, discount),
			total_amount   = COALESCE($6, total_amount),
			accept_period  = COALESCE($7, accept_period),
			pub_period     = COALESCE($8, pub_period),
			bank_id        = COALESCE($9, bank_id),
			status         = COALESCE($10, status),
			month          = COALESCE($11, month),
			year           = COALESCE($12, year),
			notes          = COALESCE($13, notes),
			updated_at     = now()
		WHERE id = $1
		RETURNING` + registrationColumns
	row := s.db.QueryRowContext(ctx, query, id,
		patch.Services, patch.InitAmount, patch.AcceptAmount, patch.Discount,
		patch.TotalAmount, patch.AcceptPeriod, patch.PubPeriod, patch.BankID,
		patch.Status, patch.Month, patch.Year, patch.Notes,
	)
	updated, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return updated, nil
}

func (s *PostgresRegistrations) Approve(ctx context.Context, id int64, assignedTo *int64) (*models.Registration, error) {
	query := `
		UPDATE registration SET
			status      = 'registered',
			assigned_to = $2,
			updated_at  = now()
		WHERE id = $1
		RETURNING` + registrationColumns
	reg, err := scanRegistration(s.db.QueryRowContext(ctx, query, id, assignedTo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("approve registration: %w", err)
	}
	return reg, nil
}

func (s *PostgresRegistrations) Assign(ctx context.Context, id int64, staffID int64) (*models.Registration, error) {
	query := `
		UPDATE registration SET
			assigned_to    = $2,
			admin_assigned = TRUE,
			status         = 'registered',
			updated_at     = now()
		WHERE id = $1
		RETURNING` + registrationColumns
	reg, err := scanRegistration(s.db.QueryRowContext(ctx, query, id, staffID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("assign registration: %w", err)
	}
	return reg, nil
}

func (s *PostgresRegistrations) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM registration WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresRegistrations) FindByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := `SELECT` + registrationColumns + ` FROM registration WHERE id = $1`
	reg, err := scanRegistration(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return reg, nil
}

func (s *PostgresRegistrations) FindRefs(ctx context.Context, id int64) (*models.Refs, error) {
	query := `SELECT id, transaction_id, prospectus_id FROM registration WHERE id = $1`
	var (
		refs  models.Refs
		txnID sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&refs.ID, &txnID, &refs.ProspectusID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration refs: %w", err)
	}
	if txnID.Valid {
		refs.TransactionID = &txnID.Int64
	}
	return &refs, nil
}

func (s *PostgresRegistrations) List(ctx context.Context) ([]*models.Registration, error) {
	query := `SELECT` + registrationColumns + ` FROM registration ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []*models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

func (s *PostgresRegistrations) CountByBankID(ctx context.Context, bankID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registration WHERE bank_id = $1`, bankID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations by bank: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*models.Registration, error) {
	var (
		reg          models.Registration
		bankID       sql.NullInt64
		assignedTo   sql.NullInt64
		registeredBy sql.NullInt64
		clientID     sql.NullInt64
		notes        sql.NullString
	)
	err := row.Scan(
		&reg.ID, &reg.ProspectusID, &reg.Services, &reg.InitAmount,
		&reg.AcceptAmount, &reg.Discount, &reg.TotalAmount, &reg.AcceptPeriod,
		&reg.PubPeriod, &bankID, &reg.Status, &reg.Month, &reg.Year,
		&assignedTo, &reg.AdminAssigned, &reg.TransactionID, &notes,
		&registeredBy, &clientID, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bankID.Valid {
		reg.BankID = &bankID.Int64
	}
	if assignedTo.Valid {
		reg.AssignedTo = &assignedTo.Int64
	}
	if registeredBy.Valid {
		reg.RegisteredBy = &registeredBy.Int64
	}
	if clientID.Valid {
		reg.ClientID = &clientID.Int64
	}
	reg.Notes = notes.String
	return &reg, nil
}

// PostgresTransactions persists payment transaction rows in PostgreSQL.
type PostgresTransactions struct {
	db *sql.DB
}

func NewPostgresTransactions(db *sql.DB) *PostgresTransactions {
	return &PostgresTransactions{db: db}
}

const transactionColumns = `
	id, transaction_type, transaction_ref, amount, transaction_date,
	additional_info, entity_id, created_at, updated_at`

func (s *PostgresTransactions) Insert(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (
			transaction_type, transaction_ref, amount, transaction_date,
			additional_info, entity_id
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + transactionColumns
	row := s.db.QueryRowContext(ctx, query,
		txn.Type, txn.ExternalRef, txn.Amount, txn.Date, txn.AdditionalInfo,
		txn.StaffID,
	)
	created, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return created, nil
}

func (s *PostgresTransactions) Update(ctx context.Context, id int64, patch models.TransactionPatch) (*models.Transaction, error) {
	query := `
		UPDATE transactions SET
			transaction_type = COALESCE($2, transaction_type),
			transaction_ref  = COALESCE($3, transaction_ref),
			amount           = COALESCE($4, amount),
			transaction_date = COALESCE($5, transaction_date),
			additional_info  = COALESCE($6, additional_info),
			entity_id        = COALESCE($7, entity_id),
			updated_at       = now()
		WHERE id = $1
		RETURNING` + transactionColumns
	row := s.db.QueryRowContext(ctx, query, id,
		patch.Type, patch.ExternalRef, patch.Amount, patch.Date,
		patch.AdditionalInfo, patch.StaffID,
	)
	updated, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return updated, nil
}

func (s *PostgresTransactions) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresTransactions) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT` + transactionColumns + ` FROM transactions WHERE id = $1`
	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return txn, nil
}

func (s *PostgresTransactions) List(ctx context.Context) ([]*models.Transaction, error) {
	query := `SELECT` + transactionColumns + ` FROM transactions ORDER BY transaction_date DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		txn     models.Transaction
		staffID sql.NullInt64
		info    sql.NullString
	)
	err := row.Scan(
		&txn.ID, &txn.Type, &txn.ExternalRef, &txn.Amount, &txn.Date,
		&info, &staffID, &txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if staffID.Valid {
		txn.StaffID = &staffID.Int64
	}
	txn.AdditionalInfo = info.String
	return &txn, nil
}

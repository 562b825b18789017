package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"regdesk/internal/bank/models"
	regmodels "regdesk/internal/registration/models"
	"regdesk/pkg/platform/sentinel"
)

// Postgres persists bank accounts in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const accountColumns = `
	id, account_name, account_holder_name, account_number, ifsc_code,
	account_type, bank, upi_id, branch, created_at, updated_at`

func (s *Postgres) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO bank_accounts (
			account_name, account_holder_name, account_number, ifsc_code,
			account_type, bank, upi_id, branch
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING` + accountColumns
	row := s.db.QueryRowContext(ctx, query,
		account.AccountName, account.AccountHolderName, account.AccountNumber,
		account.IFSCCode, account.AccountType, account.Bank, account.UPIID,
		account.Branch,
	)
	created, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("insert bank account: %w", err)
	}
	return created, nil
}

func (s *Postgres) Update(ctx context.Context, id int64, patch models.Patch) (*models.Account, error) {
	query := `
		UPDATE bank_accounts SET
			account_name        = COALESCE($2, account_name),
			account_holder_name = COALESCE($3, account_holder_name),
			account_number      = COALESCE($4, account_number),
			ifsc_code           = COALESCE($5, ifsc_code),
			account_type        = COALESCE($6, account_type),
			bank                = COALESCE($7, bank),
			upi_id              = COALESCE($8, upi_id),
			branch              = COALESCE($9, branch),
			updated_at          = now()
		WHERE id = $1
		RETURNING` + accountColumns
	row := s.db.QueryRowContext(ctx, query, id,
		patch.AccountName, patch.AccountHolderName, patch.AccountNumber,
		patch.IFSCCode, patch.AccountType, patch.Bank, patch.UPIID, patch.Branch,
	)
	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update bank account: %w", err)
	}
	return updated, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT` + accountColumns + ` FROM bank_accounts WHERE id = $1`
	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find bank account: %w", err)
	}
	return account, nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT` + accountColumns + ` FROM bank_accounts ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var out []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		out = append(out, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	return out, nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) FindSummary(ctx context.Context, bankID int64) (*regmodels.BankSummary, error) {
	var summary regmodels.BankSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT id, bank, account_number FROM bank_accounts WHERE id = $1`, bankID,
	).Scan(&summary.ID, &summary.Bank, &summary.AccountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find bank account summary: %w", err)
	}
	return &summary, nil
}

func scanAccount(row interface{ Scan(dest ...any) error }) (*models.Account, error) {
	var (
		account     models.Account
		accountType sql.NullString
		upiID       sql.NullString
		branch      sql.NullString
	)
	err := row.Scan(
		&account.ID, &account.AccountName, &account.AccountHolderName,
		&account.AccountNumber, &account.IFSCCode, &accountType, &account.Bank,
		&upiID, &branch, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.AccountType = accountType.String
	account.UPIID = upiID.String
	account.Branch = branch.String
	return &account, nil
}

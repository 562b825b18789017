package models

import (
	"time"

	dErrors "regdesk/pkg/domain-errors"
)

// Account is a payment collection account registrations may reference.
type Account struct {
	ID                int64     `json:"id"`
	AccountName       string    `json:"account_name"`
	AccountHolderName string    `json:"account_holder_name"`
	AccountNumber     string    `json:"account_number"`
	IFSCCode          string    `json:"ifsc_code"`
	AccountType       string    `json:"account_type"`
	Bank              string    `json:"bank"`
	UPIID             string    `json:"upi_id"`
	Branch            string    `json:"branch"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

var accountTypes = map[string]bool{
	"Savings": true,
	"Current": true,
	"Other":   true,
}

// CreateRequest carries a new account.
type CreateRequest struct {
	AccountName       string `json:"account_name"`
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
	IFSCCode          string `json:"ifsc_code"`
	AccountType       string `json:"account_type"`
	Bank              string `json:"bank"`
	UPIID             string `json:"upi_id"`
	Branch            string `json:"branch"`
}

func (r *CreateRequest) Validate() error {
	if r.AccountName == "" || r.AccountHolderName == "" || r.AccountNumber == "" ||
		r.IFSCCode == "" || r.Bank == "" {
		return dErrors.New(dErrors.CodeValidation,
			"account name, holder name, account number, IFSC code, and bank are required")
	}
	if r.AccountType != "" && !accountTypes[r.AccountType] {
		return dErrors.New(dErrors.CodeValidation, "account type must be Savings, Current, or Other")
	}
	return nil
}

func (r *CreateRequest) Account() *Account {
	return &Account{
		AccountName:       r.AccountName,
		AccountHolderName: r.AccountHolderName,
		AccountNumber:     r.AccountNumber,
		IFSCCode:          r.IFSCCode,
		AccountType:       r.AccountType,
		Bank:              r.Bank,
		UPIID:             r.UPIID,
		Branch:            r.Branch,
	}
}

// Patch carries partial account updates.
type Patch struct {
	AccountName       *string `json:"account_name"`
	AccountHolderName *string `json:"account_holder_name"`
	AccountNumber     *string `json:"account_number"`
	IFSCCode          *string `json:"ifsc_code"`
	AccountType       *string `json:"account_type"`
	Bank              *string `json:"bank"`
	UPIID             *string `json:"upi_id"`
	Branch            *string `json:"branch"`
}

func (p *Patch) Validate() error {
	if p.AccountType != nil && *p.AccountType != "" && !accountTypes[*p.AccountType] {
		return dErrors.New(dErrors.CodeValidation, "account type must be Savings, Current, or Other")
	}
	return nil
}

package models

import (
	dErrors "regdesk/pkg/domain-errors"
)

// CreateRequest carries the combined transaction and registration fields of
// the creation saga. Field names mirror the wire format of the admin UI.
type CreateRequest struct {
	// Transaction details.
	TransactionType string   `json:"transaction_type"`
	TransactionRef  string   `json:"transaction_id"`
	Amount          *float64 `json:"amount"`
	TransactionDate string   `json:"transaction_date"`
	AdditionalInfo  string   `json:"additional_info"`
	StaffID         *int64   `json:"entity_id"`

	// Registration details.
	ProspectusID int64   `json:"prospectus_id"`
	Services     string  `json:"services"`
	InitAmount   float64 `json:"init_amount"`
	AcceptAmount float64 `json:"accept_amount"`
	Discount     float64 `json:"discount"`
	TotalAmount  float64 `json:"total_amount"`
	AcceptPeriod string  `json:"accept_period"`
	PubPeriod    string  `json:"pub_period"`
	BankID       *int64  `json:"bank_id"`
	Status       Status  `json:"status"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	AssignedTo   *int64  `json:"assigned_to"`
	Notes        string  `json:"notes"`
	RegisteredBy *int64  `json:"registered_by"`
	ClientID     *int64  `json:"client_id"`
}

// Validate enforces the mandatory fields before any store call is made, so
// a rejected request has no side effects.
func (r *CreateRequest) Validate() error {
	if r.ProspectusID == 0 {
		return dErrors.New(dErrors.CodeValidation, "prospectus_id is required")
	}
	if r.TotalAmount == 0 {
		return dErrors.New(dErrors.CodeValidation, "total_amount is required")
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if !r.Status.Valid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid status %q", r.Status)
	}
	return nil
}

// Transaction builds the free-standing transaction row the saga inserts
// first. A missing amount defaults to 0.
func (r *CreateRequest) Transaction() *Transaction {
	amount := 0.0
	if r.Amount != nil {
		amount = *r.Amount
	}
	return &Transaction{
		Type:           r.TransactionType,
		ExternalRef:    r.TransactionRef,
		Amount:         amount,
		Date:           r.TransactionDate,
		AdditionalInfo: r.AdditionalInfo,
		StaffID:        r.StaffID,
	}
}

// Registration builds the registration row linked to the given transaction.
func (r *CreateRequest) Registration(transactionID int64) *Registration {
	return &Registration{
		ProspectusID:  r.ProspectusID,
		Services:      r.Services,
		InitAmount:    r.InitAmount,
		AcceptAmount:  r.AcceptAmount,
		Discount:      r.Discount,
		TotalAmount:   r.TotalAmount,
		AcceptPeriod:  r.AcceptPeriod,
		PubPeriod:     r.PubPeriod,
		BankID:        r.BankID,
		Status:        r.Status,
		Month:         r.Month,
		Year:          r.Year,
		AssignedTo:    r.AssignedTo,
		TransactionID: transactionID,
		Notes:         r.Notes,
		RegisteredBy:  r.RegisteredBy,
		ClientID:      r.ClientID,
	}
}

// UpdateRequest carries partial updates for both rows of the update saga.
type UpdateRequest struct {
	// Registration details.
	Services     *string  `json:"services"`
	InitAmount   *float64 `json:"init_amount"`
	AcceptAmount *float64 `json:"accept_amount"`
	Discount     *float64 `json:"discount"`
	TotalAmount  *float64 `json:"total_amount"`
	AcceptPeriod *string  `json:"accept_period"`
	PubPeriod    *string  `json:"pub_period"`
	BankID       *int64   `json:"bank_id"`
	Status       *Status  `json:"status"`
	Month        *string  `json:"month"`
	Year         *int     `json:"year"`
	Notes        *string  `json:"notes"`

	// Transaction details.
	TransactionType *string  `json:"transaction_type"`
	TransactionRef  *string  `json:"transaction_id"`
	Amount          *float64 `json:"amount"`
	TransactionDate *string  `json:"transaction_date"`
	AdditionalInfo  *string  `json:"additional_info"`
	StaffID         *int64   `json:"entity_id"`
}

// Validate rejects unknown status values before any store call.
func (r *UpdateRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return dErrors.Newf(dErrors.CodeValidation, "invalid status %q", *r.Status)
	}
	return nil
}

// RegistrationPatch extracts the registration-side fields.
func (r *UpdateRequest) RegistrationPatch() RegistrationPatch {
	return RegistrationPatch{
		Services:     r.Services,
		InitAmount:   r.InitAmount,
		AcceptAmount: r.AcceptAmount,
		Discount:     r.Discount,
		TotalAmount:  r.TotalAmount,
		AcceptPeriod: r.AcceptPeriod,
		PubPeriod:    r.PubPeriod,
		BankID:       r.BankID,
		Status:       r.Status,
		Month:        r.Month,
		Year:         r.Year,
		Notes:        r.Notes,
	}
}

// TransactionPatch extracts the transaction-side fields.
func (r *UpdateRequest) TransactionPatch() TransactionPatch {
	return TransactionPatch{
		Type:           r.TransactionType,
		ExternalRef:    r.TransactionRef,
		Amount:         r.Amount,
		Date:           r.TransactionDate,
		AdditionalInfo: r.AdditionalInfo,
		StaffID:        r.StaffID,
	}
}

// ApproveRequest carries the approval hand-off target plus transaction
// updates applied alongside the status transition.
type ApproveRequest struct {
	AssignedTo *int64 `json:"assigned_to"`

	TransactionType *string  `json:"transaction_type"`
	TransactionRef  *string  `json:"transaction_id"`
	Amount          *float64 `json:"amount"`
	TransactionDate *string  `json:"transaction_date"`
	AdditionalInfo  *string  `json:"additional_info"`
	StaffID         *int64   `json:"entity_id"`
}

// TransactionPatch extracts the transaction-side fields.
func (r *ApproveRequest) TransactionPatch() TransactionPatch {
	return TransactionPatch{
		Type:           r.TransactionType,
		ExternalRef:    r.TransactionRef,
		Amount:         r.Amount,
		Date:           r.TransactionDate,
		AdditionalInfo: r.AdditionalInfo,
		StaffID:        r.StaffID,
	}
}

// AssignRequest carries the administrative hand-off target.
type AssignRequest struct {
	AssignedTo *int64 `json:"assigned_to"`
}

// Validate requires an assignee; assignment without one makes no store call.
func (r *AssignRequest) Validate() error {
	if r.AssignedTo == nil || *r.AssignedTo == 0 {
		return dErrors.New(dErrors.CodeValidation, "assigned_to is required")
	}
	return nil
}

// NewTransactionRequest covers the standalone transaction intake endpoint.
type NewTransactionRequest struct {
	TransactionType string   `json:"transaction_type"`
	TransactionRef  string   `json:"transaction_id"`
	Amount          *float64 `json:"amount"`
	TransactionDate string   `json:"transaction_date"`
	AdditionalInfo  string   `json:"additional_info"`
	StaffID         *int64   `json:"entity_id"`
}

// Validate mirrors the intake rules: type, external reference, and date are
// mandatory; amount defaults to 0.
func (r *NewTransactionRequest) Validate() error {
	if r.TransactionType == "" || r.TransactionRef == "" || r.TransactionDate == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required transaction fields")
	}
	return nil
}

// Transaction builds the row to insert.
func (r *NewTransactionRequest) Transaction() *Transaction {
	amount := 0.0
	if r.Amount != nil {
		amount = *r.Amount
	}
	return &Transaction{
		Type:           r.TransactionType,
		ExternalRef:    r.TransactionRef,
		Amount:         amount,
		Date:           r.TransactionDate,
		AdditionalInfo: r.AdditionalInfo,
		StaffID:        r.StaffID,
	}
}

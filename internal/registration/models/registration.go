package models

import "time"

// Registration is the aggregate root of the registration saga.
//
// Invariants:
//   - ProspectusID is required and immutable after creation
//   - TransactionID is set once at creation and always resolves to a live
//     transaction row (the deletion saga removes the transaction first to
//     preserve this, at the cost of the orphan gap noted on Delete)
//   - Status transitions: pending → registered only; registered is terminal
//   - AdminAssigned transitions: false → true only
type Registration struct {
	ID            int64     `json:"id"`
	ProspectusID  int64     `json:"prospectus_id"`
	Services      string    `json:"services"`
	InitAmount    float64   `json:"init_amount"`
	AcceptAmount  float64   `json:"accept_amount"`
	Discount      float64   `json:"discount"`
	TotalAmount   float64   `json:"total_amount"`
	AcceptPeriod  string    `json:"accept_period"`
	PubPeriod     string    `json:"pub_period"`
	BankID        *int64    `json:"bank_id"`
	Status        Status    `json:"status"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
	AssignedTo    *int64    `json:"assigned_to"`
	AdminAssigned bool      `json:"admin_assigned"`
	TransactionID int64     `json:"transaction_id"`
	Notes         string    `json:"notes"`
	RegisteredBy  *int64    `json:"registered_by"`
	ClientID      *int64    `json:"client_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Refs is the minimal projection the deletion and update sagas fetch before
// touching any row: enough to order the dependent writes.
type Refs struct {
	ID            int64
	TransactionID *int64
	ProspectusID  int64
}

// Pair is the combined result of sagas that touch both rows.
type Pair struct {
	Registration *Registration `json:"registration"`
	Transaction  *Transaction  `json:"transaction"`
}

// Detail is the read-side projection of one registration with its linked
// rows resolved.
type Detail struct {
	Registration *Registration      `json:"registration"`
	Transaction  *Transaction       `json:"transaction,omitempty"`
	Prospectus   *ProspectusSummary `json:"prospectus,omitempty"`
	BankAccount  *BankSummary       `json:"bank_account,omitempty"`
}

// ProspectusSummary is the slice of the prospectus the read path exposes.
type ProspectusSummary struct {
	ID           int64  `json:"id"`
	RegID        string `json:"reg_id"`
	ClientName   string `json:"client_name"`
	Email        string `json:"email"`
	IsRegistered bool   `json:"isregistered"`
}

// BankSummary is the slice of the bank account the read path exposes.
type BankSummary struct {
	ID            int64  `json:"id"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
}

// RegistrationPatch carries partial registration updates. Nil fields are
// left untouched by the store.
type RegistrationPatch struct {
	Services      *string
	InitAmount    *float64
	AcceptAmount  *float64
	Discount      *float64
	TotalAmount   *float64
	AcceptPeriod  *string
	PubPeriod     *string
	BankID        *int64
	Status        *Status
	Month         *string
	Year          *int
	Notes         *string
}

package models

import "time"

// Transaction is a payment record owned by exactly one registration once
// linked. The creation saga inserts it first as a free-standing row; the
// deletion saga removes it first.
type Transaction struct {
	ID             int64     `json:"id"`
	Type           string    `json:"transaction_type"`
	ExternalRef    string    `json:"transaction_id"`
	Amount         float64   `json:"amount"`
	Date           string    `json:"transaction_date"`
	AdditionalInfo string    `json:"additional_info"`
	StaffID        *int64    `json:"entity_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TransactionPatch carries partial transaction updates. Nil fields are left
// untouched by the store.
type TransactionPatch struct {
	Type           *string
	ExternalRef    *string
	Amount         *float64
	Date           *string
	AdditionalInfo *string
	StaffID        *int64
}

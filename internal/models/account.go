package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeCurrent  = "current"
	AccountTypeSavings  = "savings"
	AccountTypeBusiness = "business"
	AccountTypeSalary   = "salary"

	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
	AccountStatusClosed    = "closed"
)

// Account is one linked account as assembled from the partner gateway.
// Identity is the partner-issued account ID. The record is owned by the
// aggregator for the duration of one aggregation request and is never
// persisted by this service.
type Account struct {
	ID           string         `json:"id"`
	DisplayName  string         `json:"display_name"`
	MaskedNumber string         `json:"masked_number"`
	BankCode     string         `json:"bank_code"`
	BankName     string         `json:"bank_name"`
	Type         string         `json:"type"`
	Status       string         `json:"status"`
	Currency     string         `json:"currency"`
	Balance      AccountBalance `json:"balance"`
	LastUpdated  time.Time      `json:"last_updated"`

	// DetailedBalances is filled by the balance enrichment step. When the
	// per-account balance call fails, the account is still returned with its
	// top-level balance and EnrichmentError set.
	DetailedBalances []BalanceLine `json:"detailed_balances"`
	Enriched         bool          `json:"enriched"`
	EnrichmentError  string        `json:"enrichment_error,omitempty"`
}

// AccountBalance carries the top-level balance from the accounts-list response.
// Enrichment never mutates it.
type AccountBalance struct {
	Current   decimal.Decimal `json:"current"`
	Available decimal.Decimal `json:"available"`
}

// BalanceLine is one detailed balance entry (e.g. ClosingAvailable) belonging
// to exactly one account.
type BalanceLine struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	AsOf     time.Time       `json:"as_of"`
}

// IsValidAccountType reports whether t is one of the supported account types.
func IsValidAccountType(t string) bool {
	switch t {
	case AccountTypeCurrent, AccountTypeSavings, AccountTypeBusiness, AccountTypeSalary:
		return true
	}
	return false
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXRate is one normalized entry from the partner's institution rate sheet.
type FXRate struct {
	SourceCurrency string          `json:"source_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
}

// FXAccountContext ties an FX result back to the account it was resolved for.
type FXAccountContext struct {
	AccountID       string `json:"account_id"`
	AccountCurrency string `json:"account_currency"`
}

// AccountFXRates is the rate sheet scoped to one account. Degraded means the
// account could not be verified against the accounts list before the rates
// were fetched; the rates themselves are still real partner data.
type AccountFXRates struct {
	AccountID       string    `json:"account_id"`
	AccountCurrency string    `json:"account_currency"`
	Rates           []FXRate  `json:"rates"`
	LastUpdated     time.Time `json:"last_updated"`
	Degraded        bool      `json:"degraded"`
	Warning         string    `json:"warning,omitempty"`
}

// FXQuote is a single conversion quote. TargetCurrency is the currency pair
// the quote actually matched; when the partner sheet had no exact match for
// the requested currency the first available rate is used and
// RequestedCurrency preserves what the caller asked for, so the substitution
// is always disclosed.
type FXQuote struct {
	QuoteID           string            `json:"quote_id"`
	BaseCurrency      string            `json:"base_currency"`
	TargetCurrency    string            `json:"target_currency"`
	RequestedCurrency string            `json:"requested_currency"`
	Rate              decimal.Decimal   `json:"rate"`
	RequestedAmount   *decimal.Decimal  `json:"requested_amount,omitempty"`
	ConvertedAmount   *decimal.Decimal  `json:"converted_amount,omitempty"`
	ValidUntil        time.Time         `json:"valid_until"`
	Timestamp         time.Time         `json:"timestamp"`
	AccountContext    *FXAccountContext `json:"account_context,omitempty"`
	Degraded          bool              `json:"degraded"`
	Warning           string            `json:"warning,omitempty"`
}

// ExactMatch reports whether the quote resolved the currency pair the caller
// requested.
func (q *FXQuote) ExactMatch() bool {
	return q.TargetCurrency == q.RequestedCurrency
}

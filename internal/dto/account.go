package dto

import (
	"dinarx-gateway/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// ListAccountsQuery carries the query parameters for the aggregated accounts
// listing. CustomerID is optional; the partner default is used when empty.
type ListAccountsQuery struct {
	Skip          int    `query:"skip" validate:"gte=0"`
	Limit         int    `query:"limit" validate:"gte=0,lte=100"`
	Sort          string `query:"sort" validate:"omitempty,oneof=asc desc"`
	AccountType   string `query:"account_type" validate:"omitempty,oneof=current savings business salary"`
	AccountStatus string `query:"account_status" validate:"omitempty,oneof=active suspended closed"`
	CustomerID    string `query:"customer_id" validate:"omitempty,max=64"`
}

// Account Response DTOs

// AggregatedAccountsResponse is the assembled accounts listing with
// per-currency totals and the enrichment outcome counts.
type AggregatedAccountsResponse struct {
	Accounts         []models.Account           `json:"accounts"`
	TotalsByCurrency map[string]decimal.Decimal `json:"totals_by_currency"`
	TotalCount       int                        `json:"total_count"`
	HasMore          bool                       `json:"has_more"`
	EnrichedCount    int                        `json:"enriched_count"`
	FailedCount      int                        `json:"failed_count"`
}

// AccountBalancesResponse is the detailed balance report for one account.
type AccountBalancesResponse struct {
	AccountID   string               `json:"account_id"`
	Balances    []models.BalanceLine `json:"balances"`
	LastUpdated string               `json:"last_updated"`
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"

	"github.com/shopspring/decimal"
)

// AggregationParams are the inputs for one aggregated accounts read.
type AggregationParams struct {
	CustomerID    string
	CustomerIP    string
	Skip          int
	Limit         int
	Sort          string
	AccountType   string
	AccountStatus string
}

// AggregationResult is one page of accounts with balance enrichment applied.
// Totals are summed from the list-call current balances, so enrichment
// outcomes never move them; a failed enrichment keeps the account's
// list-call balance and flags the account.
type AggregationResult struct {
	Accounts         []models.Account           `json:"accounts"`
	TotalsByCurrency map[string]decimal.Decimal `json:"totals_by_currency"`
	HasMore          bool                       `json:"has_more"`
	TotalCount       int                        `json:"total_count"`
	EnrichedCount    int                        `json:"enriched_count"`
	FailedCount      int                        `json:"failed_count"`
}

// AggregationService combines the partner's accounts list with per-account
// balance detail. The accounts list is the backbone: if it fails, the whole
// read fails. Individual balance calls are best-effort.
type AggregationService struct {
	gateway   PartnerGateway
	cfg       *config.PartnerConfig
	metrics   MetricsRecorderInterface
	workers   int
	semaphore chan struct{}
	logger    *slog.Logger
}

func NewAggregationService(
	gateway PartnerGateway,
	cfg *config.PartnerConfig,
	metrics MetricsRecorderInterface,
) AggregationServiceInterface {
	workers := cfg.BalanceWorkers
	if workers <= 0 {
		workers = 4
	}

	return &AggregationService{
		gateway:   gateway,
		cfg:       cfg,
		metrics:   metrics,
		workers:   workers,
		semaphore: make(chan struct{}, workers),
		logger:    slog.Default(),
	}
}

// GetAggregatedAccounts lists the customer's linked accounts and enriches
// each with detailed balance lines, fanning the balance calls out across a
// bounded worker pool. Accounts whose balance call failed come back with
// their list-call balance and a non-empty EnrichmentError. A cancelled
// caller context stops further fan-out but still returns the page with the
// enrichment completed so far.
func (s *AggregationService) GetAggregatedAccounts(ctx context.Context, params AggregationParams) (*AggregationResult, error) {
	start := time.Now()

	page, err := s.gateway.ListAccounts(ctx, partner.ListAccountsParams{
		Skip:          params.Skip,
		Limit:         params.Limit,
		Sort:          params.Sort,
		AccountType:   params.AccountType,
		AccountStatus: params.AccountStatus,
		CustomerID:    params.CustomerID,
		CustomerIP:    params.CustomerIP,
	})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := page.Accounts

	var wg sync.WaitGroup
	dispatched := 0
dispatch:
	for i := range accounts {
		select {
		case <-ctx.Done():
			break dispatch
		case s.semaphore <- struct{}{}:
		}

		dispatched++
		wg.Add(1)
		go func(account *models.Account) {
			defer wg.Done()
			defer func() { <-s.semaphore }()
			s.enrichAccount(ctx, account, params.CustomerIP)
		}(&accounts[i])
	}
	wg.Wait()

	// caller-level cancellation keeps whatever enrichment already finished;
	// accounts never dispatched come back with their list-call balance only
	for i := dispatched; i < len(accounts); i++ {
		accounts[i].Enriched = false
		accounts[i].EnrichmentError = "balance detail skipped: request cancelled"
	}

	result := &AggregationResult{
		Accounts:         accounts,
		TotalsByCurrency: make(map[string]decimal.Decimal),
		HasMore:          page.HasMore,
		TotalCount:       page.TotalCount,
	}

	for i := range accounts {
		account := &accounts[i]
		if account.Enriched {
			result.EnrichedCount++
		} else {
			result.FailedCount++
		}

		total, ok := result.TotalsByCurrency[account.Currency]
		if !ok {
			total = decimal.Zero
		}
		result.TotalsByCurrency[account.Currency] = total.Add(account.Balance.Current)
	}

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("account.aggregation", time.Since(start))
	}

	s.logger.Info("aggregated accounts",
		"accounts", len(accounts),
		"enriched", result.EnrichedCount,
		"failed", result.FailedCount,
	)

	return result, nil
}

// enrichAccount attaches detailed balance lines to one account. A failure is
// recorded on the account itself, never invented around.
func (s *AggregationService) enrichAccount(ctx context.Context, account *models.Account, customerIP string) {
	report, err := s.gateway.AccountBalances(ctx, account.ID, customerIP)
	if err != nil {
		account.Enriched = false
		account.EnrichmentError = enrichmentErrorMessage(err)
		if s.metrics != nil {
			s.metrics.IncrementCounter("account.enrichment.failed", nil)
		}
		s.logger.Warn("balance enrichment failed",
			"account_id", account.ID,
			"error", err,
		)
		return
	}

	// only detail lines and freshness are attached; the top-level balance
	// stays the accounts-list snapshot
	account.DetailedBalances = report.Lines
	account.Enriched = true
	if !report.LastUpdated.IsZero() {
		account.LastUpdated = report.LastUpdated
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("account.enrichment.success", nil)
	}
}

// GetAccountBalances fetches the detailed balances for one account after
// confirming the account is actually linked to the customer.
func (s *AggregationService) GetAccountBalances(ctx context.Context, accountID, customerID, customerIP string) (*partner.BalanceReport, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	found, err := s.accountLinked(ctx, accountID, customerID, customerIP)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &partner.NotFoundError{AccountID: accountID}
	}

	return s.gateway.AccountBalances(ctx, accountID, customerIP)
}

// accountLinked pages through the customer's accounts looking for the ID.
func (s *AggregationService) accountLinked(ctx context.Context, accountID, customerID, customerIP string) (bool, error) {
	pageSize := s.cfg.VerifyPageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	skip := 0
	for {
		page, err := s.gateway.ListAccounts(ctx, partner.ListAccountsParams{
			Skip:       skip,
			Limit:      pageSize,
			CustomerID: customerID,
			CustomerIP: customerIP,
		})
		if err != nil {
			return false, fmt.Errorf("verify account link: %w", err)
		}

		if _, ok := page.FindAccount(accountID); ok {
			return true, nil
		}

		if !page.HasMore || len(page.Accounts) == 0 {
			return false, nil
		}
		skip += len(page.Accounts)
	}
}

func enrichmentErrorMessage(err error) string {
	if partner.IsRetryable(err) {
		return "balance detail temporarily unavailable"
	}
	return "balance detail unavailable"
}

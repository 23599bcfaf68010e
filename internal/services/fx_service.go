package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoRatesPublished means the partner answered the FX call with an empty
// sheet. A quote is refused rather than priced from a made-up rate.
var ErrNoRatesPublished = errors.New("partner returned no FX rates")

// QuoteParams are the inputs for one FX quote resolution.
type QuoteParams struct {
	TargetCurrency string
	Amount         *decimal.Decimal
	AccountID      string
	CustomerID     string
	CustomerIP     string
}

// FXService resolves institution FX rates and conversion quotes. Every rate
// that leaves this service came off the partner's sheet; there is no local
// rate table and no fabricated fallback value.
type FXService struct {
	gateway PartnerGateway
	cfg     *config.PartnerConfig
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

func NewFXService(
	gateway PartnerGateway,
	cfg *config.PartnerConfig,
	metrics MetricsRecorderInterface,
) FXServiceInterface {
	return &FXService{
		gateway: gateway,
		cfg:     cfg,
		metrics: metrics,
		logger:  slog.Default(),
		now:     time.Now,
	}
}

// InstitutionRates fetches the raw institution rate sheet.
func (s *FXService) InstitutionRates(ctx context.Context, customerID, customerIP string) (*partner.RateSheet, error) {
	return s.gateway.FXRates(ctx, partner.CallFXRates, customerIP, customerID)
}

// defaultAccountCurrency is assumed for an unverified account. It is only a
// currency-context default; the rates themselves always come off the sheet.
const defaultAccountCurrency = "JOD"

// RatesForAccount returns the institution sheet scoped to one account. The
// account is verified against the accounts list first; when verification
// fails, whether the list call errored or the account is absent from it, the
// rates are still served but flagged degraded with a warning, since the rates
// themselves are real partner data.
func (s *FXService) RatesForAccount(ctx context.Context, accountID, customerID, customerIP string) (*models.AccountFXRates, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	result := &models.AccountFXRates{
		AccountID: accountID,
	}

	account, err := s.findAccount(ctx, accountID, customerID, customerIP)
	switch {
	case err != nil:
		s.degradeRates(result, "account verification unavailable; rates are not scoped to a verified account")
		s.logger.Warn("account verification failed for FX rates",
			"account_id", accountID,
			"error", err,
		)
	case account == nil:
		s.degradeRates(result, fmt.Sprintf("account %s not found; rates are not scoped to a verified account", accountID))
		s.logger.Warn("account absent from accounts list for FX rates",
			"account_id", accountID,
		)
	default:
		result.AccountCurrency = account.Currency
	}

	sheet, err := s.gateway.FXRates(ctx, partner.CallFXRates, customerIP, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetch FX rates: %w", err)
	}

	result.Rates = sheet.Rates
	result.LastUpdated = sheet.LastUpdated

	return result, nil
}

func (s *FXService) degradeRates(result *models.AccountFXRates, warning string) {
	result.Degraded = true
	result.Warning = warning
	result.AccountCurrency = defaultAccountCurrency
	if s.metrics != nil {
		s.metrics.IncrementCounter("fx.degraded", nil)
	}
}

// Quote resolves one conversion quote from the live sheet. An exact target
// currency match is preferred; with no exact match the first available rate
// is used and the substitution disclosed via RequestedCurrency, the degraded
// flag and a warning. An empty sheet is an error, never a guessed rate.
func (s *FXService) Quote(ctx context.Context, params QuoteParams) (*models.FXQuote, error) {
	if params.TargetCurrency == "" {
		return nil, fmt.Errorf("target currency is required")
	}
	requested := strings.ToUpper(params.TargetCurrency)

	var accountContext *models.FXAccountContext
	var verifyWarning string
	if params.AccountID != "" {
		account, err := s.findAccount(ctx, params.AccountID, params.CustomerID, params.CustomerIP)
		switch {
		case err != nil:
			verifyWarning = "account verification unavailable; quote is not grounded to a verified account"
			s.logger.Warn("account verification failed for FX quote",
				"account_id", params.AccountID,
				"error", err,
			)
		case account == nil:
			verifyWarning = fmt.Sprintf("account %s not found; quote is not grounded to a verified account", params.AccountID)
			s.logger.Warn("account absent from accounts list for FX quote",
				"account_id", params.AccountID,
			)
		default:
			accountContext = &models.FXAccountContext{
				AccountID:       account.ID,
				AccountCurrency: account.Currency,
			}
		}
		if verifyWarning != "" {
			accountContext = &models.FXAccountContext{
				AccountID:       params.AccountID,
				AccountCurrency: defaultAccountCurrency,
			}
			if s.metrics != nil {
				s.metrics.IncrementCounter("fx.degraded", nil)
			}
		}
	}

	sheet, err := s.gateway.FXRates(ctx, partner.CallFXQuote, params.CustomerIP, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("fetch FX rates for quote: %w", err)
	}
	if len(sheet.Rates) == 0 {
		return nil, ErrNoRatesPublished
	}

	now := s.now().UTC()
	quote := &models.FXQuote{
		QuoteID:           uuid.New().String(),
		RequestedCurrency: requested,
		ValidUntil:        now.Add(s.quoteValidity()),
		Timestamp:         now,
		AccountContext:    accountContext,
	}

	if rate, found := sheet.FindRate(requested); found {
		quote.BaseCurrency = rate.SourceCurrency
		quote.TargetCurrency = rate.TargetCurrency
		quote.Rate = rate.Rate
		if s.metrics != nil {
			s.metrics.IncrementCounter("fx.quote.exact", nil)
		}
	} else {
		fallback := sheet.Rates[0]
		quote.BaseCurrency = fallback.SourceCurrency
		quote.TargetCurrency = fallback.TargetCurrency
		quote.Rate = fallback.Rate
		quote.Degraded = true
		quote.Warning = fmt.Sprintf("no rate published for %s; quoting %s instead", requested, fallback.TargetCurrency)
		if s.metrics != nil {
			s.metrics.IncrementCounter("fx.quote.fallback", nil)
			s.metrics.IncrementCounter("fx.degraded", nil)
		}
		s.logger.Warn("FX quote fell back to first published rate",
			"requested", requested,
			"quoted", fallback.TargetCurrency,
		)
	}

	if verifyWarning != "" {
		quote.Degraded = true
		if quote.Warning != "" {
			quote.Warning = verifyWarning + "; " + quote.Warning
		} else {
			quote.Warning = verifyWarning
		}
	}

	if params.Amount != nil {
		requestedAmount := *params.Amount
		converted := requestedAmount.Mul(quote.Rate)
		quote.RequestedAmount = &requestedAmount
		quote.ConvertedAmount = &converted
	}

	return quote, nil
}

func (s *FXService) quoteValidity() time.Duration {
	if s.cfg.QuoteValidity > 0 {
		return s.cfg.QuoteValidity
	}
	return 5 * time.Minute
}

// findAccount pages the accounts list for one account ID. A nil account with
// a nil error means the list was searched completely and the ID is absent.
func (s *FXService) findAccount(ctx context.Context, accountID, customerID, customerIP string) (*models.Account, error) {
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
			return nil, err
		}

		if account, ok := page.FindAccount(accountID); ok {
			return account, nil
		}

		if !page.HasMore || len(page.Accounts) == 0 {
			return nil, nil
		}
		skip += len(page.Accounts)
	}
}

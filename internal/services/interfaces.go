package services

import (
	"context"
	"time"

	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"
)

// PartnerGateway is the slice of the partner client the services consume.
// Defined here so service tests can stand in a mock without an HTTP server.
type PartnerGateway interface {
	ListAccounts(ctx context.Context, params partner.ListAccountsParams) (*partner.AccountPage, error)
	AccountBalances(ctx context.Context, accountID, customerIP string) (*partner.BalanceReport, error)
	FXRates(ctx context.Context, kind partner.CallKind, customerIP, customerID string) (*partner.RateSheet, error)
	CreateAccountAccessConsent(ctx context.Context, permissions []string, customerIP string) (*models.Consent, error)
	ConsentStatus(ctx context.Context, consentID, customerIP string) (*models.Consent, error)
	CreateDomesticPaymentConsent(ctx context.Context, instruction models.PaymentInstruction, customerIP string) (*partner.PaymentConsent, error)
	CreateDomesticPayment(ctx context.Context, consentID string, instruction models.PaymentInstruction, customerIP string) (*partner.PaymentResult, error)
}

// AggregationServiceInterface defines account aggregation operations
type AggregationServiceInterface interface {
	GetAggregatedAccounts(ctx context.Context, params AggregationParams) (*AggregationResult, error)
	GetAccountBalances(ctx context.Context, accountID, customerID, customerIP string) (*partner.BalanceReport, error)
}

// FXServiceInterface defines FX rate and quote operations
type FXServiceInterface interface {
	InstitutionRates(ctx context.Context, customerID, customerIP string) (*partner.RateSheet, error)
	RatesForAccount(ctx context.Context, accountID, customerID, customerIP string) (*models.AccountFXRates, error)
	Quote(ctx context.Context, params QuoteParams) (*models.FXQuote, error)
}

// ConsentServiceInterface defines the account-access consent flow
type ConsentServiceInterface interface {
	CreateConsent(ctx context.Context, userID string, permissions []string, customerIP string) (*models.Consent, error)
	GetConsent(ctx context.Context, consentID, customerIP string) (*models.Consent, error)
	ListUserConsents(userID string, offset, limit int) ([]models.Consent, int64, error)
}

// PaymentServiceInterface defines the two-step payment flow
type PaymentServiceInterface interface {
	CreatePaymentConsent(ctx context.Context, userID string, instruction models.PaymentInstruction, customerIP string) (*partner.PaymentConsent, error)
	SubmitPayment(ctx context.Context, userID, consentID string, instruction models.PaymentInstruction, customerIP string) (*models.PaymentRecord, error)
	GetPayment(id string) (*models.PaymentRecord, error)
	ListUserPayments(userID string, offset, limit int) ([]models.PaymentRecord, int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	RecordPartnerCall(call string, statusCode int, duration time.Duration)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

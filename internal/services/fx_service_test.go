package services_test

import (
	"context"
	"testing"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"
	"dinarx-gateway/internal/services"
	"dinarx-gateway/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestFXService(t *testing.T) {
	suite.Run(t, new(FXServiceSuite))
}

type FXServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *service_mocks.MockPartnerGateway
	service services.FXServiceInterface
}

func (s *FXServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = service_mocks.NewMockPartnerGateway(s.ctrl)
	s.service = services.NewFXService(s.gateway, &config.PartnerConfig{
		VerifyPageSize: 10,
		QuoteValidity:  5 * time.Minute,
	}, nil)
}

func (s *FXServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func rateSheet(rates ...models.FXRate) *partner.RateSheet {
	return &partner.RateSheet{
		Rates:       rates,
		LastUpdated: time.Now().UTC(),
	}
}

func jodRate(target, rate string) models.FXRate {
	return models.FXRate{
		SourceCurrency: "JOD",
		TargetCurrency: target,
		Rate:           decimal.RequireFromString(rate),
	}
}

// TestQuote_ExactMatch converts a hundred dinars at the published USD rate
func (s *FXServiceSuite) TestQuote_ExactMatch() {
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709"), jodRate("EUR", "0.655")), nil)

	amount := decimal.NewFromInt(100)
	quote, err := s.service.Quote(context.Background(), services.QuoteParams{
		TargetCurrency: "USD",
		Amount:         &amount,
	})

	s.NoError(err)
	s.Equal("JOD", quote.BaseCurrency)
	s.Equal("USD", quote.TargetCurrency)
	s.Equal("USD", quote.RequestedCurrency)
	s.True(quote.ExactMatch())
	s.False(quote.Degraded)
	s.True(quote.Rate.Equal(decimal.RequireFromString("0.709")))
	s.Require().NotNil(quote.ConvertedAmount)
	s.True(quote.ConvertedAmount.Equal(decimal.RequireFromString("70.9")))
	s.NotEmpty(quote.QuoteID)
	s.True(quote.ValidUntil.After(quote.Timestamp))
}

// TestQuote_CaseInsensitiveCurrency normalizes the requested code
func (s *FXServiceSuite) TestQuote_CaseInsensitiveCurrency() {
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{TargetCurrency: "usd"})

	s.NoError(err)
	s.Equal("USD", quote.RequestedCurrency)
	s.True(quote.ExactMatch())
}

// TestQuote_FallbackDisclosesSubstitution verifies a missing pair falls back
// to the first published rate with the substitution disclosed, never hidden
func (s *FXServiceSuite) TestQuote_FallbackDisclosesSubstitution() {
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709"), jodRate("EUR", "0.655")), nil)

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{TargetCurrency: "CHF"})

	s.NoError(err)
	s.Equal("CHF", quote.RequestedCurrency)
	s.Equal("USD", quote.TargetCurrency)
	s.False(quote.ExactMatch())
	s.True(quote.Degraded)
	s.Contains(quote.Warning, "CHF")
	s.Contains(quote.Warning, "USD")
	s.True(quote.Rate.Equal(decimal.RequireFromString("0.709")))
}

// TestQuote_EmptySheetIsError verifies no rate is ever invented
func (s *FXServiceSuite) TestQuote_EmptySheetIsError() {
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(), nil)

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{TargetCurrency: "USD"})

	s.Nil(quote)
	s.ErrorContains(err, "no FX rates")
}

// TestQuote_PartnerFailurePropagates verifies a failed sheet fetch fails the
// quote rather than degrading it
func (s *FXServiceSuite) TestQuote_PartnerFailurePropagates() {
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(nil, &partner.PartnerError{StatusCode: 503, Body: "unavailable", Call: "fx_quote"})

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{TargetCurrency: "USD"})

	s.Nil(quote)
	var partnerErr *partner.PartnerError
	s.ErrorAs(err, &partnerErr)
}

// TestQuote_MissingCurrency rejects the request before any partner call
func (s *FXServiceSuite) TestQuote_MissingCurrency() {
	quote, err := s.service.Quote(context.Background(), services.QuoteParams{})

	s.Nil(quote)
	s.Error(err)
}

// TestQuote_WithAccountContext carries the verified account on the quote
func (s *FXServiceSuite) TestQuote_WithAccountContext() {
	page := &partner.AccountPage{
		Accounts: []models.Account{{ID: "ACC_001", Currency: "JOD"}},
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{
		TargetCurrency: "USD",
		AccountID:      "ACC_001",
	})

	s.NoError(err)
	s.Require().NotNil(quote.AccountContext)
	s.Equal("ACC_001", quote.AccountContext.AccountID)
	s.Equal("JOD", quote.AccountContext.AccountCurrency)
}

// TestQuote_UnknownAccountDegrades still quotes for an account absent from a
// healthy list, with the missing grounding disclosed and the default currency
// context, never a fabricated one
func (s *FXServiceSuite) TestQuote_UnknownAccountDegrades() {
	page := &partner.AccountPage{Accounts: []models.Account{{ID: "ACC_001"}}}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{
		TargetCurrency: "USD",
		AccountID:      "ACC_MISSING",
	})

	s.NoError(err)
	s.True(quote.Degraded)
	s.Contains(quote.Warning, "ACC_MISSING")
	s.Require().NotNil(quote.AccountContext)
	s.Equal("ACC_MISSING", quote.AccountContext.AccountID)
	s.Equal("JOD", quote.AccountContext.AccountCurrency)
	s.True(quote.Rate.Equal(decimal.RequireFromString("0.709")))
}

// TestQuote_VerificationFailureDegrades still quotes when the accounts list
// call itself fails; the rate is real, only the account grounding is missing
func (s *FXServiceSuite) TestQuote_VerificationFailureDegrades() {
	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return(nil, &partner.TransportError{Cause: context.DeadlineExceeded})
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXQuote, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	quote, err := s.service.Quote(context.Background(), services.QuoteParams{
		TargetCurrency: "USD",
		AccountID:      "ACC_001",
	})

	s.NoError(err)
	s.True(quote.Degraded)
	s.NotEmpty(quote.Warning)
	s.True(quote.ExactMatch())
	s.Require().NotNil(quote.AccountContext)
	s.Equal("JOD", quote.AccountContext.AccountCurrency)
}

// TestRatesForAccount_Verified scopes the sheet to the verified account
func (s *FXServiceSuite) TestRatesForAccount_Verified() {
	page := &partner.AccountPage{
		Accounts: []models.Account{{ID: "ACC_001", Currency: "JOD"}},
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXRates, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	rates, err := s.service.RatesForAccount(context.Background(), "ACC_001", "", "")

	s.NoError(err)
	s.Equal("ACC_001", rates.AccountID)
	s.Equal("JOD", rates.AccountCurrency)
	s.False(rates.Degraded)
	s.Len(rates.Rates, 1)
}

// TestRatesForAccount_DegradedWhenVerificationFails serves the real sheet
// with a warning when the accounts list is down
func (s *FXServiceSuite) TestRatesForAccount_DegradedWhenVerificationFails() {
	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return(nil, &partner.TransportError{Cause: context.DeadlineExceeded})
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXRates, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	rates, err := s.service.RatesForAccount(context.Background(), "ACC_001", "", "")

	s.NoError(err)
	s.True(rates.Degraded)
	s.NotEmpty(rates.Warning)
	s.Len(rates.Rates, 1)
}

// TestRatesForAccount_UnknownAccountDegrades serves the sheet for an account
// absent from a healthy list, flagged degraded with the default currency
func (s *FXServiceSuite) TestRatesForAccount_UnknownAccountDegrades() {
	page := &partner.AccountPage{Accounts: []models.Account{{ID: "ACC_001"}}}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXRates, gomock.Any(), gomock.Any()).
		Return(rateSheet(jodRate("USD", "0.709")), nil)

	rates, err := s.service.RatesForAccount(context.Background(), "ACC_MISSING", "", "")

	s.NoError(err)
	s.True(rates.Degraded)
	s.Contains(rates.Warning, "ACC_MISSING")
	s.Equal("JOD", rates.AccountCurrency)
	s.Len(rates.Rates, 1)
}

// TestInstitutionRates passes the sheet through untouched
func (s *FXServiceSuite) TestInstitutionRates() {
	sheet := rateSheet(jodRate("USD", "0.709"), jodRate("EUR", "0.655"))
	s.gateway.EXPECT().FXRates(gomock.Any(), partner.CallFXRates, "10.0.0.1", "IND_CUST_015").
		Return(sheet, nil)

	result, err := s.service.InstitutionRates(context.Background(), "IND_CUST_015", "10.0.0.1")

	s.NoError(err)
	s.Equal(sheet, result)
}

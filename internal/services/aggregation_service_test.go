package services_test

import (
	"context"
	"errors"
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

func TestAggregationService(t *testing.T) {
	suite.Run(t, new(AggregationServiceSuite))
}

type AggregationServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *service_mocks.MockPartnerGateway
	service services.AggregationServiceInterface
}

func (s *AggregationServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = service_mocks.NewMockPartnerGateway(s.ctrl)
	s.service = services.NewAggregationService(s.gateway, &config.PartnerConfig{
		BalanceWorkers: 2,
		VerifyPageSize: 2,
	}, nil)
}

func (s *AggregationServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testAccount(id, currency, available string) models.Account {
	amount := decimal.RequireFromString(available)
	return models.Account{
		ID:       id,
		Currency: currency,
		Balance: models.AccountBalance{
			Current:   amount,
			Available: amount,
		},
		DetailedBalances: []models.BalanceLine{},
	}
}

func balanceReport(available string) *partner.BalanceReport {
	return &partner.BalanceReport{
		Lines: []models.BalanceLine{
			{Type: "available", Amount: decimal.RequireFromString(available), Currency: "JOD"},
		},
		LastUpdated: time.Now().UTC(),
	}
}

// TestGetAggregatedAccounts_SumsAcrossAccounts verifies a page of three
// dinar accounts totals to the exact decimal sum
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_SumsAcrossAccounts() {
	page := &partner.AccountPage{
		Accounts: []models.Account{
			testAccount("ACC_001", "JOD", "100.00"),
			testAccount("ACC_002", "JOD", "200.50"),
			testAccount("ACC_003", "JOD", "50.25"),
		},
		TotalCount: 3,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_001", gomock.Any()).Return(balanceReport("100.00"), nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_002", gomock.Any()).Return(balanceReport("200.50"), nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_003", gomock.Any()).Return(balanceReport("50.25"), nil)

	result, err := s.service.GetAggregatedAccounts(context.Background(), services.AggregationParams{})

	s.NoError(err)
	s.Len(result.Accounts, 3)
	s.Equal(3, result.EnrichedCount)
	s.Equal(0, result.FailedCount)
	s.True(result.TotalsByCurrency["JOD"].Equal(decimal.RequireFromString("350.75")))
}

// TestGetAggregatedAccounts_PartialFailure verifies one failed balance call
// flags that account but keeps the full page and its list-call balance
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_PartialFailure() {
	page := &partner.AccountPage{
		Accounts: []models.Account{
			testAccount("ACC_001", "JOD", "100.00"),
			testAccount("ACC_002", "JOD", "500.00"),
			testAccount("ACC_003", "JOD", "50.25"),
		},
		TotalCount: 3,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_001", gomock.Any()).Return(balanceReport("100.00"), nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_002", gomock.Any()).
		Return(nil, &partner.PartnerError{StatusCode: 500, Body: "upstream failure", Call: "balances"})
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_003", gomock.Any()).Return(balanceReport("50.25"), nil)

	result, err := s.service.GetAggregatedAccounts(context.Background(), services.AggregationParams{})

	s.NoError(err)
	s.Len(result.Accounts, 3)
	s.Equal(2, result.EnrichedCount)
	s.Equal(1, result.FailedCount)

	var failed *models.Account
	for i := range result.Accounts {
		if result.Accounts[i].ID == "ACC_002" {
			failed = &result.Accounts[i]
		}
	}
	s.Require().NotNil(failed)
	s.False(failed.Enriched)
	s.NotEmpty(failed.EnrichmentError)
	// the list-call balance stands in; nothing is invented
	s.True(failed.Balance.Available.Equal(decimal.RequireFromString("500.00")))

	s.True(result.TotalsByCurrency["JOD"].Equal(decimal.RequireFromString("650.25")))
}

// TestGetAggregatedAccounts_ListFailureFailsWholeRead verifies the accounts
// list is the backbone call
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_ListFailureFailsWholeRead() {
	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return(nil, &partner.PartnerError{StatusCode: 502, Body: "bad gateway", Call: "accounts_list"})

	result, err := s.service.GetAggregatedAccounts(context.Background(), services.AggregationParams{})

	s.Nil(result)
	var partnerErr *partner.PartnerError
	s.ErrorAs(err, &partnerErr)
}

// TestGetAggregatedAccounts_MixedCurrencies verifies per-currency totals are
// kept apart rather than summed across currencies
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_MixedCurrencies() {
	page := &partner.AccountPage{
		Accounts: []models.Account{
			testAccount("ACC_001", "JOD", "100.00"),
			testAccount("ACC_002", "USD", "75.00"),
		},
		TotalCount: 2,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&partner.BalanceReport{Lines: []models.BalanceLine{}}, nil).Times(2)

	result, err := s.service.GetAggregatedAccounts(context.Background(), services.AggregationParams{})

	s.NoError(err)
	s.True(result.TotalsByCurrency["JOD"].Equal(decimal.RequireFromString("100.00")))
	s.True(result.TotalsByCurrency["USD"].Equal(decimal.RequireFromString("75.00")))
}

// TestGetAggregatedAccounts_EnrichmentKeepsListBalance verifies detail lines
// attach alongside the list-call balance without replacing it, and the
// per-currency totals come off the list-call current balances
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_EnrichmentKeepsListBalance() {
	page := &partner.AccountPage{
		Accounts:   []models.Account{testAccount("ACC_001", "JOD", "100.00")},
		TotalCount: 1,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_001", gomock.Any()).Return(balanceReport("75.00"), nil)

	result, err := s.service.GetAggregatedAccounts(context.Background(), services.AggregationParams{})

	s.NoError(err)
	s.Require().Len(result.Accounts, 1)

	account := result.Accounts[0]
	s.True(account.Enriched)
	s.Require().Len(account.DetailedBalances, 1)
	s.True(account.DetailedBalances[0].Amount.Equal(decimal.RequireFromString("75.00")))
	s.True(account.Balance.Available.Equal(decimal.RequireFromString("100.00")))
	s.True(account.Balance.Current.Equal(decimal.RequireFromString("100.00")))
	s.True(result.TotalsByCurrency["JOD"].Equal(decimal.RequireFromString("100.00")))
}

// TestGetAggregatedAccounts_CancellationKeepsCompletedEnrichment verifies a
// cancelled caller context still returns the page with whatever enrichment
// had already finished; the rest of the accounts are flagged, not dropped
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_CancellationKeepsCompletedEnrichment() {
	ctx, cancel := context.WithCancel(context.Background())

	page := &partner.AccountPage{
		Accounts: []models.Account{
			testAccount("ACC_001", "JOD", "100.00"),
			testAccount("ACC_002", "JOD", "200.50"),
		},
		TotalCount: 2,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_001", gomock.Any()).Return(balanceReport("100.00"), nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_002", gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID, customerIP string) (*partner.BalanceReport, error) {
			cancel()
			<-ctx.Done()
			return nil, ctx.Err()
		})

	result, err := s.service.GetAggregatedAccounts(ctx, services.AggregationParams{})

	s.NoError(err)
	s.Require().NotNil(result)
	s.Len(result.Accounts, 2)
	s.Equal(1, result.FailedCount)

	for i := range result.Accounts {
		account := result.Accounts[i]
		switch account.ID {
		case "ACC_001":
			s.True(account.Enriched)
		case "ACC_002":
			s.False(account.Enriched)
			s.NotEmpty(account.EnrichmentError)
			s.True(account.Balance.Current.Equal(decimal.RequireFromString("200.50")))
		}
	}
}

// TestGetAggregatedAccounts_CancellationSkipsUndispatched verifies accounts
// whose enrichment never started come back flagged with the list-call balance
func (s *AggregationServiceSuite) TestGetAggregatedAccounts_CancellationSkipsUndispatched() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := &partner.AccountPage{
		Accounts: []models.Account{
			testAccount("ACC_001", "JOD", "100.00"),
			testAccount("ACC_002", "JOD", "50.25"),
		},
		TotalCount: 2,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)

	result, err := s.service.GetAggregatedAccounts(ctx, services.AggregationParams{})

	s.NoError(err)
	s.Require().NotNil(result)
	s.Len(result.Accounts, 2)
	s.Equal(2, result.FailedCount)
	for i := range result.Accounts {
		s.False(result.Accounts[i].Enriched)
		s.Contains(result.Accounts[i].EnrichmentError, "cancelled")
	}
	s.True(result.TotalsByCurrency["JOD"].Equal(decimal.RequireFromString("150.25")))
}

// TestGetAccountBalances_VerifiesLinkFirst verifies the account must appear
// in the customer's accounts list before the balances call is made
func (s *AggregationServiceSuite) TestGetAccountBalances_VerifiesLinkFirst() {
	page := &partner.AccountPage{
		Accounts: []models.Account{testAccount("ACC_001", "JOD", "100.00")},
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_001", gomock.Any()).Return(balanceReport("100.00"), nil)

	report, err := s.service.GetAccountBalances(context.Background(), "ACC_001", "", "")

	s.NoError(err)
	s.Len(report.Lines, 1)
}

// TestGetAccountBalances_NotLinked verifies an unknown account is refused
// without a balances call
func (s *AggregationServiceSuite) TestGetAccountBalances_NotLinked() {
	page := &partner.AccountPage{
		Accounts: []models.Account{testAccount("ACC_001", "JOD", "100.00")},
		HasMore:  false,
	}

	s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(page, nil)

	report, err := s.service.GetAccountBalances(context.Background(), "ACC_UNKNOWN", "", "")

	s.Nil(report)
	var notFound *partner.NotFoundError
	s.ErrorAs(err, &notFound)
	s.Equal("ACC_UNKNOWN", notFound.AccountID)
}

// TestGetAccountBalances_PagesThroughList verifies link verification follows
// pagination until the account is found
func (s *AggregationServiceSuite) TestGetAccountBalances_PagesThroughList() {
	first := &partner.AccountPage{
		Accounts: []models.Account{
			testAccount("ACC_001", "JOD", "1.00"),
			testAccount("ACC_002", "JOD", "2.00"),
		},
		HasMore: true,
	}
	second := &partner.AccountPage{
		Accounts: []models.Account{testAccount("ACC_003", "JOD", "3.00")},
		HasMore:  false,
	}

	gomock.InOrder(
		s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(first, nil),
		s.gateway.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(second, nil),
	)
	s.gateway.EXPECT().AccountBalances(gomock.Any(), "ACC_003", gomock.Any()).Return(balanceReport("3.00"), nil)

	report, err := s.service.GetAccountBalances(context.Background(), "ACC_003", "", "")

	s.NoError(err)
	s.NotNil(report)
}

// TestGetAccountBalances_EmptyAccountID rejects the call before any network
// activity
func (s *AggregationServiceSuite) TestGetAccountBalances_EmptyAccountID() {
	report, err := s.service.GetAccountBalances(context.Background(), "", "", "")

	s.Nil(report)
	s.Error(err)
	s.False(errors.Is(err, context.Canceled))
}

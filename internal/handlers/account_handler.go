package handlers

import (
	"net/http"
	"time"

	"dinarx-gateway/internal/dto"
	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves the aggregated account views assembled from the
// partner gateway. Nothing it returns is read from local storage.
type AccountHandler struct {
	aggregationService services.AggregationServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(aggregationService services.AggregationServiceInterface) *AccountHandler {
	return &AccountHandler{aggregationService: aggregationService}
}

// GetAccounts returns the aggregated accounts listing with per-currency totals
// @Summary List aggregated accounts
// @Description Retrieve the customer's linked accounts from the partner gateway, enriched with detailed balances and per-currency totals. Accounts whose balance call failed are still returned, flagged with enrichment_error.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Pagination offset" default(0)
// @Param limit query int false "Results per page (max 100)" default(10)
// @Param sort query string false "Sort order" Enums(asc, desc)
// @Param account_type query string false "Filter by account type" Enums(current, savings, business, salary)
// @Param account_status query string false "Filter by status" Enums(active, suspended, closed)
// @Success 200 {object} dto.AggregatedAccountsResponse "Aggregated accounts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "ACCOUNT_004 - Partner accounts call failed"
// @Failure 503 {object} errors.ErrorResponse "PARTNER_003 - Partner gateway is unreachable"
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListAccountsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.aggregationService.GetAggregatedAccounts(c.Request().Context(), services.AggregationParams{
		CustomerID:    query.CustomerID,
		CustomerIP:    getClientIP(c),
		Skip:          query.Skip,
		Limit:         query.Limit,
		Sort:          query.Sort,
		AccountType:   query.AccountType,
		AccountStatus: query.AccountStatus,
	})
	if err != nil {
		return SendPartnerError(c, err, errors.AccountListFailed)
	}

	return c.JSON(http.StatusOK, dto.AggregatedAccountsResponse{
		Accounts:         result.Accounts,
		TotalsByCurrency: result.TotalsByCurrency,
		TotalCount:       result.TotalCount,
		HasMore:          result.HasMore,
		EnrichedCount:    result.EnrichedCount,
		FailedCount:      result.FailedCount,
	})
}

// GetAccountBalances returns the detailed balance report for one account
// @Summary Get account balances
// @Description Retrieve the detailed balance lines for a single account. The account must appear in the customer's linked accounts; unknown accounts are refused before the balances call.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Partner account ID"
// @Success 200 {object} dto.AccountBalancesResponse "Balance lines"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not linked"
// @Failure 502 {object} errors.ErrorResponse "ACCOUNT_005 - Partner balances call failed"
// @Router /accounts/{accountId}/balances [get]
func (h *AccountHandler) GetAccountBalances(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID := c.Param("accountId")
	if accountID == "" {
		return SendError(c, errors.AccountInvalidID)
	}

	report, err := h.aggregationService.GetAccountBalances(
		c.Request().Context(), accountID, c.QueryParam("customer_id"), getClientIP(c))
	if err != nil {
		return SendPartnerError(c, err, errors.AccountBalanceFailed)
	}

	return c.JSON(http.StatusOK, dto.AccountBalancesResponse{
		AccountID:   accountID,
		Balances:    report.Lines,
		LastUpdated: report.LastUpdated.Format(time.RFC3339),
	})
}

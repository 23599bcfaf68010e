package handlers

import (
	stderrors "errors"
	"net/http"

	"dinarx-gateway/internal/dto"
	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// FXHandler serves the partner's foreign exchange rate sheet and quotes.
type FXHandler struct {
	fxService services.FXServiceInterface
}

// NewFXHandler creates a new FX handler
func NewFXHandler(fxService services.FXServiceInterface) *FXHandler {
	return &FXHandler{fxService: fxService}
}

// GetInstitutionRates returns the institution's published rate sheet
// @Summary Get institution FX rates
// @Description Retrieve the partner institution's published foreign exchange rate sheet. Rates come straight from the partner; an empty or failed sheet is an error, never a substituted rate.
// @Tags FX
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.InstitutionRatesResponse "Published rates"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "FX_002 - Partner FX call failed"
// @Router /fx/rates [get]
func (h *FXHandler) GetInstitutionRates(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	sheet, err := h.fxService.InstitutionRates(c.Request().Context(), c.QueryParam("customer_id"), getClientIP(c))
	if err != nil {
		return SendPartnerError(c, err, errors.FXQuoteFailed)
	}

	return c.JSON(http.StatusOK, dto.InstitutionRatesResponse{
		BaseCurrency: "JOD",
		Rates:        sheet.Rates,
		LastUpdated:  sheet.LastUpdated,
	})
}

// GetAccountRates returns the rate sheet scoped to one linked account
// @Summary Get FX rates for an account
// @Description Retrieve the rate sheet scoped to a verified account. When verification fails, because the accounts list errored or the account is absent from it, the rates are still served flagged degraded with a warning.
// @Tags FX
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Partner account ID"
// @Success 200 {object} models.AccountFXRates "Account-scoped rates"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "FX_002 - Partner FX call failed"
// @Router /accounts/{accountId}/fx [get]
func (h *FXHandler) GetAccountRates(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID := c.Param("accountId")
	if accountID == "" {
		return SendError(c, errors.AccountInvalidID)
	}

	rates, err := h.fxService.RatesForAccount(
		c.Request().Context(), accountID, c.QueryParam("customer_id"), getClientIP(c))
	if err != nil {
		return SendPartnerError(c, err, errors.FXQuoteFailed)
	}

	return c.JSON(http.StatusOK, rates)
}

// CreateQuote produces a conversion quote against the current rate sheet
// @Summary Create an FX quote
// @Description Quote a conversion from JOD to the requested currency. When the partner publishes no rate for that currency the first available rate is used and the substitution is disclosed in requested_currency and warning; failed account verification degrades the quote, it never refuses it.
// @Tags FX
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FXQuoteRequest true "Quote request"
// @Success 200 {object} models.FXQuote "Conversion quote"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, FX_003 - Invalid currency or amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "FX_004 - Partner returned no rates"
// @Router /fx/quotes [post]
func (h *FXHandler) CreateQuote(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.FXQuoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.FXInvalidCurrency, errors.WithDetails(err.Error()))
	}

	params := services.QuoteParams{
		TargetCurrency: req.TargetCurrency,
		AccountID:      req.AccountID,
		CustomerID:     req.CustomerID,
		CustomerIP:     getClientIP(c),
	}

	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil || !amount.IsPositive() {
			return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Amount must be a positive decimal"))
		}
		params.Amount = &amount
	}

	quote, err := h.fxService.Quote(c.Request().Context(), params)
	if err != nil {
		if stderrors.Is(err, services.ErrNoRatesPublished) {
			return SendError(c, errors.FXNoRatesReturned)
		}
		return SendPartnerError(c, err, errors.FXQuoteFailed)
	}

	return c.JSON(http.StatusOK, quote)
}

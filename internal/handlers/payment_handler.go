package handlers

import (
	stderrors "errors"
	"net/http"

	"dinarx-gateway/internal/dto"
	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/repositories"
	"dinarx-gateway/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PaymentHandler serves the two-step domestic payment flow: register the
// instruction as a payment consent, then submit the payment against it.
// Whether the consent was authorised is the partner's decision alone.
type PaymentHandler struct {
	paymentService services.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService services.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentConsent registers a payment instruction with the partner
// @Summary Create payment consent
// @Description Step one of the payment flow: register the payment instruction with the partner gateway and obtain a payment consent ID.
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PaymentInstructionRequest true "Payment instruction"
// @Success 201 {object} dto.PaymentConsentResponse "Payment consent created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, PAYMENT_002 - Invalid amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "PAYMENT_004 - Partner payment consent call failed"
// @Router /payments/consents [post]
func (h *PaymentHandler) CreatePaymentConsent(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.PaymentInstructionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	instruction, err := buildInstruction(req)
	if err != nil {
		return SendError(c, errors.PaymentInvalidAmount, errors.WithDetails(err.Error()))
	}

	consent, err := h.paymentService.CreatePaymentConsent(c.Request().Context(), userID, *instruction, getClientIP(c))
	if err != nil {
		return SendPartnerError(c, err, errors.PaymentInitiationFailed)
	}

	return c.JSON(http.StatusCreated, dto.PaymentConsentResponse{
		ConsentID: consent.ID,
		Status:    consent.Status,
		CreatedAt: consent.CreatedAt,
		Message:   "Payment consent created; awaiting customer authorisation",
	})
}

// SubmitPayment submits a payment against an existing payment consent
// @Summary Submit domestic payment
// @Description Step two of the payment flow: submit the payment against a previously created payment consent. The partner's answer is returned as-is, including a rejection when the consent was never authorised.
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitPaymentRequest true "Consent ID and payment instruction"
// @Success 201 {object} dto.PaymentResponse "Payment submitted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, PAYMENT_003 - Missing consent ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "PAYMENT_004 - Partner rejected or failed the payment"
// @Router /payments [post]
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SubmitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.ConsentID == "" {
		return SendError(c, errors.PaymentConsentRequired)
	}

	instruction, err := buildInstruction(req.Instruction)
	if err != nil {
		return SendError(c, errors.PaymentInvalidAmount, errors.WithDetails(err.Error()))
	}

	record, err := h.paymentService.SubmitPayment(c.Request().Context(), userID, req.ConsentID, *instruction, getClientIP(c))
	if err != nil {
		return SendPartnerError(c, err, errors.PaymentInitiationFailed)
	}

	return c.JSON(http.StatusCreated, dto.PaymentResponse{
		Payment: record,
		Message: "Payment submitted; status is the partner's decision",
	})
}

// GetPayment reads one payment record
// @Summary Get payment by ID
// @Description Retrieve one payment record created through this gateway.
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param paymentId path string true "Partner payment ID"
// @Success 200 {object} dto.PaymentResponse "Payment"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "PAYMENT_001 - Payment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /payments/{paymentId} [get]
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	paymentID := c.Param("paymentId")
	if paymentID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("Payment ID is required"))
	}

	record, err := h.paymentService.GetPayment(paymentID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrPaymentNotFound) {
			return SendError(c, errors.PaymentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PaymentResponse{Payment: record})
}

// ListPayments returns the user's payment records
// @Summary List my payments
// @Description Retrieve the paginated list of payments submitted through this gateway by the authenticated user.
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Results per page (max 100)" default(10)
// @Success 200 {object} dto.PaymentListResponse "Payments"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 10)
	if limit > 100 {
		limit = 100
	}

	records, total, err := h.paymentService.ListUserPayments(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PaymentListResponse{
		Payments: records,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// buildInstruction converts the request payload into the service-level
// instruction, parsing the amount as an exact decimal.
func buildInstruction(req dto.PaymentInstructionRequest) (*models.PaymentInstruction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, stderrors.New("amount must be a decimal string")
	}
	if !amount.IsPositive() {
		return nil, stderrors.New("amount must be greater than zero")
	}

	return &models.PaymentInstruction{
		PayeeName:     req.PayeeName,
		PayeeAccount:  req.PayeeAccount,
		Amount:        amount,
		Currency:      req.Currency,
		Reference:     req.Reference,
		Description:   req.Description,
		DebtorAccount: req.DebtorAccount,
	}, nil
}

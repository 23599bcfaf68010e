package handlers

import (
	stderrors "errors"
	"net/http"

	"dinarx-gateway/internal/dto"
	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"
	"dinarx-gateway/internal/services"

	"github.com/labstack/echo/v4"
)

// ConsentHandler serves the account access consent flow. The partner gateway
// owns consent state; the local store only maps consent IDs to gateway users.
type ConsentHandler struct {
	consentService services.ConsentServiceInterface
}

// NewConsentHandler creates a new consent handler
func NewConsentHandler(consentService services.ConsentServiceInterface) *ConsentHandler {
	return &ConsentHandler{consentService: consentService}
}

// CreateConsent registers a new account access consent with the partner
// @Summary Create account access consent
// @Description Register an account access consent with the partner gateway for the requested permissions. The consent starts in AwaitingAuthorisation; the customer authorises it on the partner side.
// @Tags Consents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateConsentRequest true "Requested permissions"
// @Success 201 {object} dto.ConsentResponse "Consent created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or unknown permission"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "CONSENT_004 - Partner consent call failed"
// @Router /consents [post]
func (h *ConsentHandler) CreateConsent(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateConsentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	for _, permission := range req.Permissions {
		if !models.IsValidPermission(permission) {
			return SendError(c, errors.ValidationGeneral,
				errors.WithDetails("Unknown permission: "+permission))
		}
	}

	consent, err := h.consentService.CreateConsent(c.Request().Context(), userID, req.Permissions, getClientIP(c))
	if err != nil {
		return SendPartnerError(c, err, errors.ConsentCreationFailed)
	}

	return c.JSON(http.StatusCreated, dto.ConsentResponse{
		Consent: consent,
		Message: "Consent created; awaiting customer authorisation",
	})
}

// GetConsent reads the live consent status from the partner
// @Summary Get consent status
// @Description Read one consent from the partner gateway. The partner's answer is authoritative; the local mirror is refreshed from it, never the other way around.
// @Tags Consents
// @Security BearerAuth
// @Produce json
// @Param consentId path string true "Partner consent ID"
// @Success 200 {object} dto.ConsentResponse "Consent"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CONSENT_001 - Consent not found"
// @Failure 502 {object} errors.ErrorResponse "PARTNER_001 - Partner consent call failed"
// @Router /consents/{consentId} [get]
func (h *ConsentHandler) GetConsent(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	consentID := c.Param("consentId")
	if consentID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("Consent ID is required"))
	}

	consent, err := h.consentService.GetConsent(c.Request().Context(), consentID, getClientIP(c))
	if err != nil {
		return h.mapConsentErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.ConsentResponse{Consent: consent})
}

// ListConsents returns the user's mirrored consents
// @Summary List my consents
// @Description Retrieve the paginated list of consents created through this gateway by the authenticated user. Served from the local mirror; statuses are as of the last partner read.
// @Tags Consents
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Results per page (max 100)" default(10)
// @Success 200 {object} dto.ConsentListResponse "Consents"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /consents [get]
func (h *ConsentHandler) ListConsents(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 10)
	if limit > 100 {
		limit = 100
	}

	consents, total, err := h.consentService.ListUserConsents(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ConsentListResponse{
		Consents: consents,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// mapConsentErr gives a partner 404 its consent-specific code; everything
// else goes through the shared partner mapping.
func (h *ConsentHandler) mapConsentErr(c echo.Context, err error) error {
	var partnerErr *partner.PartnerError
	if stderrors.As(err, &partnerErr) && partnerErr.StatusCode == http.StatusNotFound {
		return SendError(c, errors.ConsentNotFound)
	}
	return SendPartnerError(c, err, errors.PartnerRequestFailed)
}

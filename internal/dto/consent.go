package dto

import "dinarx-gateway/internal/models"

// Consent Request DTOs

// CreateConsentRequest represents the request payload for creating an
// account access consent.
type CreateConsentRequest struct {
	Permissions []string `json:"permissions" validate:"required,min=1,dive,required"`
}

// Consent Response DTOs

// ConsentResponse wraps a single consent in API responses.
type ConsentResponse struct {
	Consent *models.Consent `json:"consent"`
	Message string          `json:"message,omitempty"`
}

// ConsentListResponse represents a paginated list of the user's consents.
type ConsentListResponse struct {
	Consents []models.Consent `json:"consents"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

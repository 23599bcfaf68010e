package dto

import (
	"time"

	"dinarx-gateway/internal/models"
)

// Payment Request DTOs

// PaymentInstructionRequest carries the caller's payment details for both
// steps of the flow. Amount is a string to preserve decimal precision.
type PaymentInstructionRequest struct {
	PayeeName     string `json:"payee_name" validate:"required,min=1,max=255"`
	PayeeAccount  string `json:"payee_account" validate:"required,iban"`
	Amount        string `json:"amount" validate:"required"`
	Currency      string `json:"currency" validate:"required,currency_code"`
	Reference     string `json:"reference" validate:"omitempty,max=255"`
	Description   string `json:"description" validate:"omitempty,max=255"`
	DebtorAccount string `json:"debtor_account" validate:"omitempty,max=64"`
}

// SubmitPaymentRequest represents step two: submitting a payment against a
// previously created payment consent.
type SubmitPaymentRequest struct {
	ConsentID   string                    `json:"consent_id" validate:"required,partner_id"`
	Instruction PaymentInstructionRequest `json:"instruction" validate:"required"`
}

// Payment Response DTOs

// PaymentConsentResponse represents the partner's answer to step one.
type PaymentConsentResponse struct {
	ConsentID string    `json:"consent_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message,omitempty"`
}

// PaymentResponse wraps a single payment record.
type PaymentResponse struct {
	Payment *models.PaymentRecord `json:"payment"`
	Message string                `json:"message,omitempty"`
}

// PaymentListResponse represents a paginated list of the user's payments.
type PaymentListResponse struct {
	Payments []models.PaymentRecord `json:"payments"`
	Total    int64                  `json:"total"`
	Offset   int                    `json:"offset"`
	Limit    int                    `json:"limit"`
}

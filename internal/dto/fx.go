package dto

import (
	"time"

	"dinarx-gateway/internal/models"
)

// FX Request DTOs

// FXQuoteRequest represents the request payload for a conversion quote.
// Amount is a string so decimal precision survives the JSON round trip.
type FXQuoteRequest struct {
	TargetCurrency string `json:"target_currency" validate:"required,currency_code"`
	Amount         string `json:"amount" validate:"omitempty,decimal_amount"`
	AccountID      string `json:"account_id" validate:"omitempty,partner_id"`
	CustomerID     string `json:"customer_id" validate:"omitempty,max=64"`
}

// FX Response DTOs

// InstitutionRatesResponse is the partner's published rate sheet.
type InstitutionRatesResponse struct {
	BaseCurrency string          `json:"base_currency"`
	Rates        []models.FXRate `json:"rates"`
	LastUpdated  time.Time       `json:"last_updated"`
}

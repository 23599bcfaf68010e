package repositories

import (
	"time"

	"dinarx-gateway/internal/models"
)

// ConsentRepositoryInterface defines the contract for the local consent
// mirror. The partner stays authoritative for consent status; these records
// exist so the gateway knows which consents it issued for which user.
type ConsentRepositoryInterface interface {
	Create(consent *models.Consent) error
	GetByID(id string) (*models.Consent, error)
	GetByUserID(userID string, offset, limit int) ([]models.Consent, int64, error)
	GetUsableByUserID(userID string) ([]models.Consent, error)
	UpdateStatus(id, status string) error
	Upsert(consent *models.Consent) error
	ExpireStale(now time.Time) (int64, error)
}

// PaymentRepositoryInterface defines the contract for payment record
// operations
type PaymentRepositoryInterface interface {
	Create(record *models.PaymentRecord) error
	GetByID(id string) (*models.PaymentRecord, error)
	GetByConsentID(consentID string) ([]models.PaymentRecord, error)
	GetByUserID(userID string, offset, limit int) ([]models.PaymentRecord, int64, error)
	UpdateStatus(id, status string) error
}

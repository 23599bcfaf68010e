package repositories

import (
	"errors"
	"fmt"

	"dinarx-gateway/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment record not found")
)

// PaymentRepository handles database operations for payment records
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &PaymentRepository{
		db: db,
	}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(record *models.PaymentRecord) error {
	if record == nil {
		return errors.New("payment record cannot be nil")
	}

	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create payment record: %w", err)
	}

	return nil
}

// GetByID retrieves a payment record by its partner-issued ID
func (r *PaymentRepository) GetByID(id string) (*models.PaymentRecord, error) {
	var record models.PaymentRecord

	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment record by ID: %w", err)
	}

	return &record, nil
}

// GetByConsentID retrieves all payments submitted against one consent
func (r *PaymentRepository) GetByConsentID(consentID string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord

	err := r.db.Where("consent_id = ?", consentID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get payment records for consent: %w", err)
	}

	return records, nil
}

// GetByUserID retrieves a page of payment records for a user, newest first
func (r *PaymentRepository) GetByUserID(userID string, offset, limit int) ([]models.PaymentRecord, int64, error) {
	var records []models.PaymentRecord
	var total int64

	if err := r.db.Model(&models.PaymentRecord{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payment records for user: %w", err)
	}

	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get payment records for user: %w", err)
	}

	return records, total, nil
}

// UpdateStatus records the partner's latest answer for one payment
func (r *PaymentRepository) UpdateStatus(id, status string) error {
	result := r.db.Model(&models.PaymentRecord{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

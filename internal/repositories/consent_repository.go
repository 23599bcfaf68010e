package repositories

import (
	"errors"
	"fmt"
	"time"

	"dinarx-gateway/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrConsentNotFound = errors.New("consent not found")
)

// ConsentRepository handles database operations for the consent mirror
type ConsentRepository struct {
	db *gorm.DB
}

// NewConsentRepository creates a new consent repository
func NewConsentRepository(db *gorm.DB) ConsentRepositoryInterface {
	return &ConsentRepository{
		db: db,
	}
}

// Create inserts a new consent record
func (r *ConsentRepository) Create(consent *models.Consent) error {
	if consent == nil {
		return errors.New("consent cannot be nil")
	}

	if err := r.db.Create(consent).Error; err != nil {
		return fmt.Errorf("failed to create consent: %w", err)
	}

	return nil
}

// GetByID retrieves a consent by its partner-issued ID
func (r *ConsentRepository) GetByID(id string) (*models.Consent, error) {
	var consent models.Consent

	if err := r.db.Where("id = ?", id).First(&consent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsentNotFound
		}
		return nil, fmt.Errorf("failed to get consent by ID: %w", err)
	}

	return &consent, nil
}

// GetByUserID retrieves a page of consents for a user, newest first
func (r *ConsentRepository) GetByUserID(userID string, offset, limit int) ([]models.Consent, int64, error) {
	var consents []models.Consent
	var total int64

	if err := r.db.Model(&models.Consent{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count consents for user: %w", err)
	}

	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&consents).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get consents for user: %w", err)
	}

	return consents, total, nil
}

// GetUsableByUserID retrieves authorised, unexpired consents for a user
func (r *ConsentRepository) GetUsableByUserID(userID string) ([]models.Consent, error) {
	var consents []models.Consent

	err := r.db.Where("user_id = ? AND status = ? AND expires_at > ?",
		userID, models.ConsentStatusAuthorised, time.Now().UTC()).
		Order("created_at DESC").
		Find(&consents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get usable consents for user: %w", err)
	}

	return consents, nil
}

// UpdateStatus updates the mirrored status of one consent
func (r *ConsentRepository) UpdateStatus(id, status string) error {
	result := r.db.Model(&models.Consent{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update consent status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrConsentNotFound
	}

	return nil
}

// Upsert writes the partner's current view of a consent over the mirror.
// Status checks go to the partner first; the mirror is refreshed with
// whatever comes back.
func (r *ConsentRepository) Upsert(consent *models.Consent) error {
	if consent == nil {
		return errors.New("consent cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "permissions", "expires_at", "updated_at",
		}),
	}).Create(consent).Error
	if err != nil {
		return fmt.Errorf("failed to upsert consent: %w", err)
	}

	return nil
}

// ExpireStale marks consents past their expiry window as expired
func (r *ConsentRepository) ExpireStale(now time.Time) (int64, error) {
	result := r.db.Model(&models.Consent{}).
		Where("expires_at < ? AND status IN ?", now, []string{
			models.ConsentStatusAwaitingAuthorisation,
			models.ConsentStatusAuthorised,
		}).
		Update("status", models.ConsentStatusExpired)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire stale consents: %w", result.Error)
	}

	return result.RowsAffected, nil
}

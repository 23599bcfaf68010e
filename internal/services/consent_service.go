package services

import (
	"context"
	"fmt"
	"log/slog"

	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/repositories"
)

// ConsentService drives the account-access consent flow. The partner is the
// source of truth for consent state; the local repository is a mirror so the
// gateway knows which consents belong to which user.
type ConsentService struct {
	gateway PartnerGateway
	repo    repositories.ConsentRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewConsentService(
	gateway PartnerGateway,
	repo repositories.ConsentRepositoryInterface,
	metrics MetricsRecorderInterface,
) ConsentServiceInterface {
	return &ConsentService{
		gateway: gateway,
		repo:    repo,
		metrics: metrics,
		logger:  slog.Default(),
	}
}

// CreateConsent registers a consent with the partner and mirrors it locally.
// The partner-issued ID, status and expiry are stored as returned.
func (s *ConsentService) CreateConsent(ctx context.Context, userID string, permissions []string, customerIP string) (*models.Consent, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(permissions) == 0 {
		return nil, fmt.Errorf("at least one permission is required")
	}
	for _, permission := range permissions {
		if !models.IsValidPermission(permission) {
			return nil, fmt.Errorf("unknown permission: %s", permission)
		}
	}

	consent, err := s.gateway.CreateAccountAccessConsent(ctx, permissions, customerIP)
	if err != nil {
		return nil, fmt.Errorf("create consent: %w", err)
	}

	consent.UserID = userID
	if err := s.repo.Upsert(consent); err != nil {
		// the partner consent exists either way; a mirror failure is logged,
		// not surfaced as a failed creation
		s.logger.Error("failed to mirror consent locally",
			"consent_id", consent.ID,
			"error", err,
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("consent.event", map[string]string{"event": "created"})
	}

	s.logger.Info("consent created",
		"consent_id", consent.ID,
		"status", consent.Status,
	)

	return consent, nil
}

// GetConsent reads the consent's current state from the partner and
// refreshes the mirror with the answer.
func (s *ConsentService) GetConsent(ctx context.Context, consentID, customerIP string) (*models.Consent, error) {
	if consentID == "" {
		return nil, fmt.Errorf("consent ID is required")
	}

	consent, err := s.gateway.ConsentStatus(ctx, consentID, customerIP)
	if err != nil {
		return nil, fmt.Errorf("get consent status: %w", err)
	}

	// keep the user association from the mirror; the partner does not know
	// the gateway's user IDs
	if local, lookupErr := s.repo.GetByID(consentID); lookupErr == nil {
		consent.UserID = local.UserID
	}

	if err := s.repo.Upsert(consent); err != nil {
		s.logger.Error("failed to refresh consent mirror",
			"consent_id", consent.ID,
			"error", err,
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("consent.event", map[string]string{"event": "status_checked"})
	}

	return consent, nil
}

// ListUserConsents reads the local mirror; it does not call the partner.
func (s *ConsentService) ListUserConsents(userID string, offset, limit int) ([]models.Consent, int64, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("user ID is required")
	}
	if limit <= 0 {
		limit = 10
	}

	return s.repo.GetByUserID(userID, offset, limit)
}

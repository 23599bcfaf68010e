package services

import (
	"context"
	"fmt"
	"log/slog"

	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"
	"dinarx-gateway/internal/repositories"
)

// PaymentService drives the two-step payment flow: register the instruction
// as a payment consent, then submit the payment against that consent. Whether
// the consent has been authorized is the partner's decision; this service
// only requires that a consent ID exists before step two.
type PaymentService struct {
	gateway PartnerGateway
	repo    repositories.PaymentRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewPaymentService(
	gateway PartnerGateway,
	repo repositories.PaymentRepositoryInterface,
	metrics MetricsRecorderInterface,
) PaymentServiceInterface {
	return &PaymentService{
		gateway: gateway,
		repo:    repo,
		metrics: metrics,
		logger:  slog.Default(),
	}
}

// CreatePaymentConsent performs step one: registering the payment
// instruction with the partner and obtaining a consent ID.
func (s *PaymentService) CreatePaymentConsent(ctx context.Context, userID string, instruction models.PaymentInstruction, customerIP string) (*partner.PaymentConsent, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := validateInstruction(instruction); err != nil {
		return nil, err
	}

	consent, err := s.gateway.CreateDomesticPaymentConsent(ctx, instruction, customerIP)
	if err != nil {
		return nil, fmt.Errorf("create payment consent: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("payment.event", map[string]string{"event": "consent_created"})
	}

	s.logger.Info("payment consent created",
		"consent_id", consent.ID,
		"status", consent.Status,
	)

	return consent, nil
}

// SubmitPayment performs step two against an existing payment consent and
// records the partner's answer locally. The partner's status comes back
// as-is, including a rejection for an unauthorized consent.
func (s *PaymentService) SubmitPayment(ctx context.Context, userID, consentID string, instruction models.PaymentInstruction, customerIP string) (*models.PaymentRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if consentID == "" {
		return nil, fmt.Errorf("payment consent ID is required")
	}
	if err := validateInstruction(instruction); err != nil {
		return nil, err
	}

	result, err := s.gateway.CreateDomesticPayment(ctx, consentID, instruction, customerIP)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementCounter("payment.event", map[string]string{"event": "rejected"})
		}
		return nil, fmt.Errorf("submit payment: %w", err)
	}

	record := &models.PaymentRecord{
		ID:           result.ID,
		ConsentID:    result.ConsentID,
		UserID:       userID,
		PayeeName:    instruction.PayeeName,
		PayeeAccount: instruction.PayeeAccount,
		Amount:       instruction.Amount,
		Currency:     instruction.Currency,
		Reference:    instruction.Reference,
		Status:       result.Status,
	}

	if err := s.repo.Create(record); err != nil {
		// the payment is already with the partner; a record failure must not
		// look like a failed payment
		s.logger.Error("failed to record payment locally",
			"payment_id", result.ID,
			"error", err,
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("payment.event", map[string]string{"event": "submitted"})
	}

	s.logger.Info("payment submitted",
		"payment_id", result.ID,
		"consent_id", result.ConsentID,
		"status", result.Status,
	)

	return record, nil
}

// GetPayment reads one payment record from the local store.
func (s *PaymentService) GetPayment(id string) (*models.PaymentRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("payment ID is required")
	}
	return s.repo.GetByID(id)
}

// ListUserPayments reads a page of the user's payment records.
func (s *PaymentService) ListUserPayments(userID string, offset, limit int) ([]models.PaymentRecord, int64, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("user ID is required")
	}
	if limit <= 0 {
		limit = 10
	}

	return s.repo.GetByUserID(userID, offset, limit)
}

func validateInstruction(instruction models.PaymentInstruction) error {
	if instruction.PayeeName == "" {
		return fmt.Errorf("payee name is required")
	}
	if instruction.PayeeAccount == "" {
		return fmt.Errorf("payee account is required")
	}
	if !instruction.Amount.IsPositive() {
		return fmt.Errorf("payment amount must be positive")
	}
	if len(instruction.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter code")
	}
	return nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses as issued by the partner gateway. The two-step flow is
// Created(AwaitingAuthorisation) -> AcceptedSettlementInProcess | Rejected;
// the partner alone decides the transition.
const (
	PaymentStatusAwaitingAuthorisation       = "AwaitingAuthorisation"
	PaymentStatusAcceptedSettlementInProcess = "AcceptedSettlementInProcess"
	PaymentStatusRejected                    = "Rejected"
)

// PaymentInstruction is the caller-supplied input for a domestic payment.
type PaymentInstruction struct {
	PayeeName     string          `json:"payee_name"`
	PayeeAccount  string          `json:"payee_account"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description,omitempty"`
	DebtorAccount string          `json:"debtor_account,omitempty"`
}

// PaymentRecord is the local mirror of a partner-issued domestic payment,
// keyed by the partner payment ID and linked to the payment consent that
// authorized it.
type PaymentRecord struct {
	ID           string          `gorm:"type:varchar(128);primary_key" json:"id"`
	ConsentID    string          `gorm:"type:varchar(128);not null;index" json:"consent_id"`
	UserID       string          `gorm:"type:varchar(128);index" json:"user_id"`
	PayeeName    string          `gorm:"type:varchar(255)" json:"payee_name"`
	PayeeAccount string          `gorm:"type:varchar(64)" json:"payee_account"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency     string          `gorm:"type:varchar(3);not null" json:"currency"`
	Reference    string          `gorm:"type:varchar(255)" json:"reference"`
	Status       string          `gorm:"type:varchar(40);not null;index" json:"status"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsSettling reports whether the partner accepted the payment for settlement.
func (p *PaymentRecord) IsSettling() bool {
	return p.Status == PaymentStatusAcceptedSettlementInProcess
}

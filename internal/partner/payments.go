package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dinarx-gateway/internal/models"

	"github.com/google/uuid"
)

const (
	pathPaymentConsents  = "/open-banking/v1.0/domestic-payment-consents"
	pathDomesticPayments = "/open-banking/v1.0/domestic-payments"
)

// PaymentConsent is the partner's answer to step one of the payment flow.
type PaymentConsent struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentResult is the partner's answer to step two. Status is whatever the
// partner decided; the client does not second-guess it.
type PaymentResult struct {
	ID        string    `json:"id"`
	ConsentID string    `json:"consent_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type paymentInitiation struct {
	InstructionIdentification string            `json:"InstructionIdentification"`
	EndToEndIdentification    string            `json:"EndToEndIdentification"`
	InstructedAmount          instructedAmount  `json:"InstructedAmount"`
	CreditorAccount           creditorAccount   `json:"CreditorAccount"`
	RemittanceInformation     remittanceDetails `json:"RemittanceInformation"`
}

type instructedAmount struct {
	Amount   string `json:"Amount"`
	Currency string `json:"Currency"`
}

type creditorAccount struct {
	Identification string `json:"Identification"`
	Name           string `json:"Name"`
}

type remittanceDetails struct {
	Reference    string `json:"Reference"`
	Unstructured string `json:"Unstructured,omitempty"`
}

type paymentConsentRequest struct {
	Data struct {
		Initiation paymentInitiation `json:"Initiation"`
	} `json:"Data"`
	Risk map[string]any `json:"Risk"`
}

type paymentRequest struct {
	Data struct {
		ConsentID  string            `json:"ConsentId"`
		Initiation paymentInitiation `json:"Initiation"`
	} `json:"Data"`
	Risk map[string]any `json:"Risk"`
}

type paymentConsentEnvelope struct {
	Data struct {
		ConsentID        string `json:"ConsentId"`
		Status           string `json:"Status"`
		CreationDateTime string `json:"CreationDateTime"`
	} `json:"Data"`
	Links map[string]string `json:"Links,omitempty"`
}

type paymentEnvelope struct {
	Data struct {
		DomesticPaymentID string `json:"DomesticPaymentId"`
		ConsentID         string `json:"ConsentId"`
		Status            string `json:"Status"`
		CreationDateTime  string `json:"CreationDateTime"`
	} `json:"Data"`
	Links map[string]string `json:"Links,omitempty"`
}

// CreateDomesticPaymentConsent performs step one of the two-step payment
// flow: registering the payment instructions and obtaining a consent ID.
func (c *Client) CreateDomesticPaymentConsent(ctx context.Context, instruction models.PaymentInstruction, customerIP string) (*PaymentConsent, error) {
	headers := c.headers.Build(CallPaymentConsentCreate, customerIP, "")

	request := paymentConsentRequest{Risk: map[string]any{}}
	request.Data.Initiation = buildInitiation(instruction)

	body, err := c.post(ctx, CallPaymentConsentCreate, pathPaymentConsents, headers, request)
	if err != nil {
		return nil, err
	}

	var envelope paymentConsentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       fmt.Sprintf("malformed payment consent envelope: %v", err),
			Call:       CallPaymentConsentCreate.String(),
		}
	}
	if envelope.Data.ConsentID == "" {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       "payment consent envelope missing ConsentId",
			Call:       CallPaymentConsentCreate.String(),
		}
	}

	return &PaymentConsent{
		ID:        envelope.Data.ConsentID,
		Status:    envelope.Data.Status,
		CreatedAt: parseTimestamp(envelope.Data.CreationDateTime),
	}, nil
}

// CreateDomesticPayment performs step two: submitting the payment against an
// existing consent ID. Whether the consent has been authorized is the
// partner's call; the only local requirement is a non-empty consent ID.
func (c *Client) CreateDomesticPayment(ctx context.Context, consentID string, instruction models.PaymentInstruction, customerIP string) (*PaymentResult, error) {
	if consentID == "" {
		return nil, fmt.Errorf("payment requires a consent ID")
	}

	headers := c.headers.Build(CallPaymentCreate, customerIP, "")

	request := paymentRequest{Risk: map[string]any{}}
	request.Data.ConsentID = consentID
	request.Data.Initiation = buildInitiation(instruction)

	body, err := c.post(ctx, CallPaymentCreate, pathDomesticPayments, headers, request)
	if err != nil {
		return nil, err
	}

	var envelope paymentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       fmt.Sprintf("malformed payment envelope: %v", err),
			Call:       CallPaymentCreate.String(),
		}
	}
	if envelope.Data.DomesticPaymentID == "" {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       "payment envelope missing DomesticPaymentId",
			Call:       CallPaymentCreate.String(),
		}
	}

	result := &PaymentResult{
		ID:        envelope.Data.DomesticPaymentID,
		ConsentID: envelope.Data.ConsentID,
		Status:    envelope.Data.Status,
		CreatedAt: parseTimestamp(envelope.Data.CreationDateTime),
	}
	if result.ConsentID == "" {
		result.ConsentID = consentID
	}

	return result, nil
}

// buildInitiation maps caller instructions onto the partner's initiation
// block. Amounts are serialized as decimal strings; no float conversion.
func buildInitiation(instruction models.PaymentInstruction) paymentInitiation {
	return paymentInitiation{
		InstructionIdentification: uuid.New().String(),
		EndToEndIdentification:    instruction.Reference,
		InstructedAmount: instructedAmount{
			Amount:   instruction.Amount.String(),
			Currency: instruction.Currency,
		},
		CreditorAccount: creditorAccount{
			Identification: instruction.PayeeAccount,
			Name:           instruction.PayeeName,
		},
		RemittanceInformation: remittanceDetails{
			Reference:    instruction.Reference,
			Unstructured: instruction.Description,
		},
	}
}

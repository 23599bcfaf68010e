package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"dinarx-gateway/internal/models"
)

const pathAccountConsents = "/open-banking/v1.0/account-access-consents"

// AIS/PIS calls use the Data/Links envelope rather than the flat gateway
// shape. Keeping the two parsers apart means a partner API version change
// touches one of them, not every call site.
type consentEnvelope struct {
	Data  consentData       `json:"Data"`
	Links map[string]string `json:"Links,omitempty"`
}

type consentData struct {
	ConsentID          string   `json:"ConsentId"`
	Status             string   `json:"Status"`
	Permissions        []string `json:"Permissions"`
	CreationDateTime   string   `json:"CreationDateTime"`
	ExpirationDateTime string   `json:"ExpirationDateTime"`
}

type consentCreateRequest struct {
	Data consentCreateData `json:"Data"`
	Risk map[string]any    `json:"Risk"`
}

type consentCreateData struct {
	Permissions        []string `json:"Permissions"`
	ExpirationDateTime string   `json:"ExpirationDateTime"`
}

// CreateAccountAccessConsent registers a new AIS consent with the partner.
// The validity window comes from configuration; the partner answers with its
// own consent ID, status and expiry, which are authoritative.
func (c *Client) CreateAccountAccessConsent(ctx context.Context, permissions []string, customerIP string) (*models.Consent, error) {
	headers := c.headers.Build(CallConsentCreate, customerIP, "")

	request := consentCreateRequest{
		Data: consentCreateData{
			Permissions:        permissions,
			ExpirationDateTime: time.Now().UTC().Add(c.cfg.ConsentValidity).Format(authDateLayout),
		},
		Risk: map[string]any{},
	}

	body, err := c.post(ctx, CallConsentCreate, pathAccountConsents, headers, request)
	if err != nil {
		return nil, err
	}

	return parseConsentEnvelope(body, CallConsentCreate)
}

// ConsentStatus reads the current state of a consent from the partner. There
// is no local caching on this path; every call reflects the partner's source
// of truth.
func (c *Client) ConsentStatus(ctx context.Context, consentID, customerIP string) (*models.Consent, error) {
	headers := c.headers.Build(CallConsentStatus, customerIP, "")
	path := pathAccountConsents + "/" + url.PathEscape(consentID)

	body, err := c.get(ctx, CallConsentStatus, path, nil, headers)
	if err != nil {
		return nil, err
	}

	return parseConsentEnvelope(body, CallConsentStatus)
}

func parseConsentEnvelope(body []byte, kind CallKind) (*models.Consent, error) {
	var envelope consentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       fmt.Sprintf("malformed consent envelope: %v", err),
			Call:       kind.String(),
		}
	}

	if envelope.Data.ConsentID == "" {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       "consent envelope missing ConsentId",
			Call:       kind.String(),
		}
	}

	return &models.Consent{
		ID:          envelope.Data.ConsentID,
		Permissions: models.PermissionList(envelope.Data.Permissions),
		Status:      envelope.Data.Status,
		CreatedAt:   parseTimestamp(envelope.Data.CreationDateTime),
		ExpiresAt:   parseTimestamp(envelope.Data.ExpirationDateTime),
	}, nil
}

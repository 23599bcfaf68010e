package partner

import (
	"net/http"
	"time"

	"dinarx-gateway/internal/config"

	"github.com/google/uuid"
)

// CallKind identifies the partner endpoint family a request is built for.
// The header profile differs per kind: the balances call intentionally omits
// the customer ID header, a documented asymmetry in the partner contract.
type CallKind int

const (
	CallAccountsList CallKind = iota
	CallBalances
	CallFXRates
	CallFXQuote
	CallConsentCreate
	CallConsentStatus
	CallPaymentConsentCreate
	CallPaymentCreate
)

func (k CallKind) String() string {
	switch k {
	case CallAccountsList:
		return "accounts_list"
	case CallBalances:
		return "balances"
	case CallFXRates:
		return "fx_rates"
	case CallFXQuote:
		return "fx_quote"
	case CallConsentCreate:
		return "consent_create"
	case CallConsentStatus:
		return "consent_status"
	case CallPaymentConsentCreate:
		return "payment_consent_create"
	case CallPaymentCreate:
		return "payment_create"
	default:
		return "unknown"
	}
}

// includesCustomerID reports whether the call profile carries the customer ID
// header. Only the balances call omits it.
func (k CallKind) includesCustomerID() bool {
	return k != CallBalances
}

// Partner header names. The interaction ID and idempotency key are distinct
// headers: the first correlates request traces, the second lets the partner
// drop duplicate retried requests.
const (
	headerAuthorization = "Authorization"
	headerFinancialID   = "x-financial-id"
	headerInteractionID = "x-interactions-id"
	headerIdempotency   = "x-idempotency-key"
	headerJWSSignature  = "x-jws-signature"
	headerAuthDate      = "x-auth-date"
	headerCustomerIP    = "x-customer-ip-address"
	headerCustomerAgent = "x-customer-user-agent"
	headerCustomerID    = "x-customer-id"
)

// authDateLayout is the partner's exact timestamp profile for x-auth-date.
const authDateLayout = "2006-01-02T15:04:05Z"

// RequestHeaders is the ephemeral per-call header bundle. InteractionID and
// IdempotencyKey are freshly generated for every build; reusing either across
// calls violates the partner contract.
type RequestHeaders struct {
	Authorization     string
	FinancialID       string
	InteractionID     string
	IdempotencyKey    string
	Signature         string
	AuthDate          string
	CustomerIP        string
	CustomerUserAgent string
	CustomerID        string
}

// HeaderBuilder constructs RequestHeaders from static configuration plus
// per-call randomness. Construction cannot fail; missing secrets are a
// startup concern, not a per-call one.
type HeaderBuilder struct {
	cfg *config.PartnerConfig
	now func() time.Time
}

func NewHeaderBuilder(cfg *config.PartnerConfig) *HeaderBuilder {
	return &HeaderBuilder{
		cfg: cfg,
		now: time.Now,
	}
}

// Build assembles the header bundle for one outbound call. customerIP and
// customerID fall back to configured defaults when empty; customerID is
// dropped entirely for call kinds that must not carry it.
func (b *HeaderBuilder) Build(kind CallKind, customerIP, customerID string) RequestHeaders {
	if customerIP == "" {
		customerIP = "127.0.0.1"
	}

	headers := RequestHeaders{
		Authorization:     b.cfg.Authorization,
		FinancialID:       b.cfg.FinancialID,
		InteractionID:     uuid.New().String(),
		IdempotencyKey:    uuid.New().String(),
		Signature:         b.cfg.JWSSignature,
		AuthDate:          b.now().UTC().Format(authDateLayout),
		CustomerIP:        customerIP,
		CustomerUserAgent: b.cfg.UserAgent,
	}

	if kind.includesCustomerID() {
		if customerID == "" {
			customerID = b.cfg.DefaultCustomerID
		}
		headers.CustomerID = customerID
	}

	return headers
}

// apply writes the bundle onto an outbound request. An empty CustomerID means
// the header is omitted, not sent blank.
func (h RequestHeaders) apply(req *http.Request) {
	req.Header.Set(headerAuthorization, h.Authorization)
	req.Header.Set(headerFinancialID, h.FinancialID)
	req.Header.Set(headerInteractionID, h.InteractionID)
	req.Header.Set(headerIdempotency, h.IdempotencyKey)
	req.Header.Set(headerJWSSignature, h.Signature)
	req.Header.Set(headerAuthDate, h.AuthDate)
	req.Header.Set(headerCustomerIP, h.CustomerIP)
	req.Header.Set(headerCustomerAgent, h.CustomerUserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if h.CustomerID != "" {
		req.Header.Set(headerCustomerID, h.CustomerID)
	}
}

package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dinarx-gateway/internal/models"

	"github.com/shopspring/decimal"
)

// The FX endpoint lives under the gateway's URL-encoded product path.
const pathFXRates = "/gateway/Foreign%20Exchange%20%28FX%29/v0.4.3/institution/FXs"

// RateSheet is the normalized institution FX rate table.
type RateSheet struct {
	Rates       []models.FXRate `json:"rates"`
	LastUpdated time.Time       `json:"last_updated"`
}

// FindRate returns the rate whose target currency matches exactly.
func (s *RateSheet) FindRate(targetCurrency string) (*models.FXRate, bool) {
	for i := range s.Rates {
		if s.Rates[i].TargetCurrency == targetCurrency {
			return &s.Rates[i], true
		}
	}
	return nil, false
}

type fxEnvelope struct {
	Data        []fxRateResource `json:"data"`
	LastUpdated string           `json:"lastUpdated"`
}

type fxRateResource struct {
	SourceCurrency  string          `json:"sourceCurrency"`
	TargetCurrency  string          `json:"targetCurrency"`
	ConversionValue decimal.Decimal `json:"conversionValue"`
}

// FXRates fetches the institution rate sheet. The call kind distinguishes
// plain rate reads from quote resolutions for tracing and metrics, but both
// hit the same partner endpoint.
func (c *Client) FXRates(ctx context.Context, kind CallKind, customerIP, customerID string) (*RateSheet, error) {
	headers := c.headers.Build(kind, customerIP, customerID)

	body, err := c.get(ctx, kind, pathFXRates, nil, headers)
	if err != nil {
		return nil, err
	}

	var envelope fxEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       fmt.Sprintf("malformed FX envelope: %v", err),
			Call:       kind.String(),
		}
	}

	sheet := &RateSheet{
		Rates:       make([]models.FXRate, 0, len(envelope.Data)),
		LastUpdated: parseTimestamp(envelope.LastUpdated),
	}
	for _, resource := range envelope.Data {
		source := resource.SourceCurrency
		if source == "" {
			source = "JOD"
		}
		sheet.Rates = append(sheet.Rates, models.FXRate{
			SourceCurrency: source,
			TargetCurrency: resource.TargetCurrency,
			Rate:           resource.ConversionValue,
		})
	}

	return sheet, nil
}

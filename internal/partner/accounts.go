package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dinarx-gateway/internal/models"

	"github.com/shopspring/decimal"
)

const (
	pathAccounts = "/gateway/Accounts/v0.4.3/accounts"
	pathBalances = "/gateway/Balances/v0.4.3/accounts/%s/balances"
)

// ListAccountsParams are the pagination and filter inputs for the
// accounts-list call.
type ListAccountsParams struct {
	Skip          int
	Limit         int
	Sort          string
	AccountType   string
	AccountStatus string
	CustomerID    string
	CustomerIP    string
}

// AccountPage is one normalized page of the partner accounts list.
type AccountPage struct {
	Accounts   []models.Account `json:"accounts"`
	HasMore    bool             `json:"has_more"`
	TotalCount int              `json:"total_count"`
}

// FindAccount returns the account with the given partner ID, if present.
func (p *AccountPage) FindAccount(accountID string) (*models.Account, bool) {
	for i := range p.Accounts {
		if p.Accounts[i].ID == accountID {
			return &p.Accounts[i], true
		}
	}
	return nil, false
}

// Gateway-style accounts envelope: a flat `data` array, unlike the
// Data/Links envelope used by the AIS/PIS consent calls.
type accountsEnvelope struct {
	Data       []accountResource `json:"data"`
	HasMore    bool              `json:"hasMore"`
	TotalCount int               `json:"totalCount"`
}

type accountResource struct {
	AccountID                string          `json:"accountId"`
	AccountStatus            string          `json:"accountStatus"`
	AccountCurrency          string          `json:"accountCurrency"`
	LastModificationDateTime string          `json:"lastModificationDateTime"`
	AccountType              accountTypeInfo `json:"accountType"`
	AvailableBalance         balanceInfo     `json:"availableBalance"`
	CurrentBalance           *balanceInfo    `json:"currentBalance,omitempty"`
	MainRoute                routeInfo       `json:"mainRoute"`
	InstitutionBasicInfo     institutionInfo `json:"institutionBasicInfo"`
}

type accountTypeInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type balanceInfo struct {
	BalanceAmount   decimal.Decimal `json:"balanceAmount"`
	BalancePosition string          `json:"balancePosition"`
}

type routeInfo struct {
	Address string `json:"address"`
}

type institutionInfo struct {
	Name                      institutionName `json:"name"`
	InstitutionIdentification routeInfo       `json:"institutionIdentification"`
}

type institutionName struct {
	EnName string `json:"enName"`
	ArName string `json:"arName"`
}

type balancesEnvelope struct {
	Balances    []balanceLineResource `json:"balances"`
	LastUpdated string                `json:"lastUpdated"`
}

type balanceLineResource struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	LastUpdated string          `json:"lastUpdated"`
}

// BalanceReport is the normalized result of one balances call.
type BalanceReport struct {
	Lines       []models.BalanceLine `json:"lines"`
	LastUpdated time.Time            `json:"last_updated"`
}

// ListAccounts fetches one page of linked accounts. It issues exactly one
// partner call and does not retry internally; a non-success status surfaces
// as a typed error, never as an empty list.
func (c *Client) ListAccounts(ctx context.Context, params ListAccountsParams) (*AccountPage, error) {
	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Sort == "" {
		params.Sort = "desc"
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(params.Skip))
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("sort", params.Sort)
	if params.AccountType != "" {
		query.Set("accountType", params.AccountType)
	}
	if params.AccountStatus != "" {
		query.Set("accountStatus", params.AccountStatus)
	}

	headers := c.headers.Build(CallAccountsList, params.CustomerIP, params.CustomerID)
	body, err := c.get(ctx, CallAccountsList, pathAccounts, query, headers)
	if err != nil {
		return nil, err
	}

	var envelope accountsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       fmt.Sprintf("malformed accounts envelope: %v", err),
			Call:       CallAccountsList.String(),
		}
	}

	page := &AccountPage{
		Accounts:   make([]models.Account, 0, len(envelope.Data)),
		HasMore:    envelope.HasMore,
		TotalCount: envelope.TotalCount,
	}
	for _, resource := range envelope.Data {
		page.Accounts = append(page.Accounts, normalizeAccount(resource))
	}
	if page.TotalCount == 0 {
		page.TotalCount = len(page.Accounts)
	}

	return page, nil
}

// AccountBalances fetches the detailed balance lines for one account. The
// header bundle for this call deliberately omits the customer ID.
func (c *Client) AccountBalances(ctx context.Context, accountID, customerIP string) (*BalanceReport, error) {
	headers := c.headers.Build(CallBalances, customerIP, "")
	path := fmt.Sprintf(pathBalances, url.PathEscape(accountID))

	body, err := c.get(ctx, CallBalances, path, nil, headers)
	if err != nil {
		return nil, err
	}

	var envelope balancesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &PartnerError{
			StatusCode: 200,
			Body:       fmt.Sprintf("malformed balances envelope: %v", err),
			Call:       CallBalances.String(),
		}
	}

	report := &BalanceReport{
		Lines:       make([]models.BalanceLine, 0, len(envelope.Balances)),
		LastUpdated: parseTimestamp(envelope.LastUpdated),
	}
	for _, line := range envelope.Balances {
		report.Lines = append(report.Lines, models.BalanceLine{
			Type:     line.Type,
			Amount:   line.Amount,
			Currency: line.Currency,
			AsOf:     parseTimestamp(line.LastUpdated),
		})
	}

	return report, nil
}

// normalizeAccount flattens the partner's nested account resource into the
// internal model. Enrichment state starts empty; the aggregator fills it.
func normalizeAccount(resource accountResource) models.Account {
	current := resource.AvailableBalance.BalanceAmount
	if resource.CurrentBalance != nil {
		current = resource.CurrentBalance.BalanceAmount
	}

	currency := resource.AccountCurrency
	if currency == "" {
		currency = "JOD"
	}

	return models.Account{
		ID:           resource.AccountID,
		DisplayName:  resource.AccountType.Name,
		MaskedNumber: maskAccountNumber(resource.MainRoute.Address),
		BankCode:     resource.InstitutionBasicInfo.InstitutionIdentification.Address,
		BankName:     resource.InstitutionBasicInfo.Name.EnName,
		Type:         normalizeAccountType(resource.AccountType.Code),
		Status:       resource.AccountStatus,
		Currency:     currency,
		Balance: models.AccountBalance{
			Current:   current,
			Available: resource.AvailableBalance.BalanceAmount,
		},
		LastUpdated:      parseTimestamp(resource.LastModificationDateTime),
		DetailedBalances: []models.BalanceLine{},
	}
}

// normalizeAccountType maps partner account type codes (e.g. SAL_ACC,
// SAV_ACC) to the internal vocabulary.
func normalizeAccountType(code string) string {
	upper := strings.ToUpper(code)
	switch {
	case strings.Contains(upper, "SAL"):
		return models.AccountTypeSalary
	case strings.Contains(upper, "SAV"):
		return models.AccountTypeSavings
	case strings.Contains(upper, "BUS"):
		return models.AccountTypeBusiness
	default:
		return models.AccountTypeCurrent
	}
}

// maskAccountNumber hides all but the last four characters of an IBAN or
// account route address.
func maskAccountNumber(address string) string {
	if len(address) <= 4 {
		return address
	}
	return "****" + address[len(address)-4:]
}

// parseTimestamp parses the partner's ISO-8601 UTC timestamps. Missing or
// malformed values come back as the zero time rather than failing the call.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}

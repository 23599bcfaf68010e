package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Consent statuses as issued by the partner gateway.
const (
	ConsentStatusAwaitingAuthorisation = "AwaitingAuthorisation"
	ConsentStatusAuthorised            = "Authorised"
	ConsentStatusRejected              = "Rejected"
	ConsentStatusExpired               = "Expired"
)

// Account access permissions requested on a consent.
const (
	PermissionReadAccounts     = "ReadAccountsDetail"
	PermissionReadBalances     = "ReadBalances"
	PermissionReadTransactions = "ReadTransactionsDetail"
	PermissionInitiatePayments = "InitiatePayments"
)

// Consent is the local mirror of a partner-issued consent record. The partner
// remains the source of truth; rows here are refreshed from partner responses
// and never substitute for them.
type Consent struct {
	ID          string         `gorm:"type:varchar(128);primary_key" json:"id"`
	UserID      string         `gorm:"type:varchar(128);index" json:"user_id"`
	Permissions PermissionList `gorm:"type:text" json:"permissions"`
	Status      string         `gorm:"type:varchar(40);not null;index" json:"status"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	ExpiresAt   time.Time      `gorm:"not null" json:"expires_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IsTerminal reports whether the consent can no longer change state.
func (c *Consent) IsTerminal() bool {
	return c.Status == ConsentStatusRejected || c.Status == ConsentStatusExpired
}

// IsUsable reports whether the consent currently authorizes access.
func (c *Consent) IsUsable(now time.Time) bool {
	return c.Status == ConsentStatusAuthorised && now.Before(c.ExpiresAt)
}

// IsValidPermission checks whether the given permission is recognized.
func IsValidPermission(permission string) bool {
	switch permission {
	case PermissionReadAccounts, PermissionReadBalances, PermissionReadTransactions, PermissionInitiatePayments:
		return true
	default:
		return false
	}
}

// PermissionList stores a set of permission strings as a JSON text column,
// keeping SQLite compatibility for tests.
type PermissionList []string

// Value implements driver.Valuer interface
func (p PermissionList) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (p *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PermissionList", value)
	}

	if len(bytes) == 0 {
		*p = nil
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// Contains reports whether the permission set includes perm.
func (p PermissionList) Contains(perm string) bool {
	for _, v := range p {
		if v == perm {
			return true
		}
	}
	return false
}

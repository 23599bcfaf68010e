package validation

import (
	"reflect"
	"regexp"
	"strings"

	"dinarx-gateway/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("partner_id", validatePartnerID)
	_ = v.RegisterValidation("consent_permission", validateConsentPermission)
	_ = v.RegisterValidation("iban", validateIBAN)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode checks for an ISO 4217 style three-letter code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Za-z]{3}$`, code)
	return matched
}

// validateDecimalAmount checks that a string parses as a positive decimal.
// Amounts travel as strings so precision never passes through a float.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.IsPositive()
}

// validatePartnerID checks a partner-issued resource ID (account, consent or
// payment). The partner uses opaque identifiers; only the shape is checked.
func validatePartnerID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" {
		return false
	}
	matched, _ := regexp.MatchString(`^[A-Za-z0-9_-]{1,128}$`, id)
	return matched
}

// validateConsentPermission checks a permission against the supported set
func validateConsentPermission(fl validator.FieldLevel) bool {
	return models.IsValidPermission(fl.Field().String())
}

// validateIBAN checks the rough shape of an IBAN payee account. Full
// checksum validation is the partner's job.
func validateIBAN(fl validator.FieldLevel) bool {
	iban := strings.ToUpper(strings.ReplaceAll(fl.Field().String(), " ", ""))
	matched, _ := regexp.MatchString(`^[A-Z]{2}\d{2}[A-Z0-9]{11,30}$`, iban)
	return matched
}

package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	swiftBicRegex = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	// Format-only check: country code, two check digits, 11-30 alphanumerics.
	// No mod-97 verification.
	ibanRegex          = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
	routingLooseRegex  = regexp.MustCompile(`^[0-9]{6,11}$`)
	routingStrictRegex = regexp.MustCompile(`^[0-9]{9}$`)
	tickerRegex        = regexp.MustCompile(`^[A-Z0-9]+$`)
)

func IsValidSwiftBic(code string) bool    { return swiftBicRegex.MatchString(code) }
func IsValidIban(iban string) bool        { return ibanRegex.MatchString(iban) }
func IsValidRoutingNumber(n string) bool  { return routingLooseRegex.MatchString(n) }
func IsStrictRoutingNumber(n string) bool { return routingStrictRegex.MatchString(n) }
func IsValidCryptoTicker(s string) bool   { return tickerRegex.MatchString(s) }

// RegisterCustomValidators wires the banking and crypto format checks into a
// validator instance. Empty values pass so the tags compose with omitempty
// semantics on optional fields.
func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("swiftbic", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsValidSwiftBic(s)
	})
	v.RegisterValidation("iban_format", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsValidIban(s)
	})
	v.RegisterValidation("routing_number", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsValidRoutingNumber(s)
	})
	v.RegisterValidation("routing_number_strict", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsStrictRoutingNumber(s)
	})
	v.RegisterValidation("crypto_ticker", func(fl validator.FieldLevel) bool {
		return IsValidCryptoTicker(fl.Field().String())
	})
}

// Package validation holds the stateless format checks applied to ledger input.
package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	AccountFormatMessage = "Account must follow format ACC-XXXXX (where X is alphanumeric)"
	CurrencyMessage      = "Currency must be a valid ISO 4217 code (e.g., USD, EUR, GBP)"
	AmountMessage        = "Amount must be a positive number with maximum 2 decimal places"
)

// AccountIDPattern is exported for API schema documentation.
const AccountIDPattern = `^ACC-[A-Za-z0-9]{5}$`

const maxAmountPlaces = 2

var accountIDRegexp = regexp.MustCompile(AccountIDPattern)

// SupportedCurrencies lists the accepted ISO 4217 codes.
var SupportedCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "CNY", "AUD", "CAD", "CHF", "HKD", "SGD",
	"SEK", "NOK", "DKK", "PLN", "RUB", "INR", "BRL", "ZAR", "KRW", "MXN",
	"NZD", "TRY", "THB", "IDR", "MYR", "PHP", "CZK", "HUF", "ILS", "CLP",
}

var supportedCurrencySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(SupportedCurrencies))
	for _, code := range SupportedCurrencies {
		set[code] = struct{}{}
	}
	return set
}()

// IsAccountID reports whether account is "ACC-" followed by exactly five ASCII letters or digits.
func IsAccountID(account string) bool {
	return accountIDRegexp.MatchString(account)
}

// NormalizeCurrency upper-cases currency and reports whether it is supported.
func NormalizeCurrency(currency string) (string, bool) {
	code := strings.ToUpper(currency)
	_, ok := supportedCurrencySet[code]
	if !ok {
		return "", false
	}
	return code, true
}

// IsAmount reports whether amount is positive and has at most two significant decimal places.
func IsAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	return amount.Equal(amount.Truncate(maxAmountPlaces))
}

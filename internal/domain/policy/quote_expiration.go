package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultQuoteExpirationDays is how long a customer has to accept a quote.
const DefaultQuoteExpirationDays = 3

// IsExpired reports whether a quote issued at issuedAt is no longer acceptable at now.
// The window is inclusive: exactly thresholdDays after issue is still valid.
func IsExpired(issuedAt, now time.Time, thresholdDays int) bool {
	return now.Sub(issuedAt) > time.Duration(thresholdDays)*24*time.Hour
}

// QuoteRules are the operator-tunable quote thresholds.
type QuoteRules struct {
	ExpirationDays int
	// AllowZeroQuote accepts a zero amount (free diagnostic). Negative amounts are
	// never accepted.
	AllowZeroQuote bool
}

func DefaultQuoteRules() QuoteRules {
	return QuoteRules{ExpirationDays: DefaultQuoteExpirationDays}
}

func (r QuoteRules) IsExpired(issuedAt, now time.Time) bool {
	days := r.ExpirationDays
	if days <= 0 {
		days = DefaultQuoteExpirationDays
	}
	return IsExpired(issuedAt, now, days)
}

func (r QuoteRules) AcceptsAmount(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	if amount.IsZero() {
		return r.AllowZeroQuote
	}
	return true
}

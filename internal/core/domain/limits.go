package domain

import "github.com/shopspring/decimal"

// Limits holds the business thresholds of the payment network. Values come
// from configuration; DefaultLimits matches the reference deployment.
type Limits struct {
	WalletCap        decimal.Decimal // absolute wallet ceiling
	LoadMax          decimal.Decimal // per-transaction cap on load amount
	PaymentLimit     decimal.Decimal // micro-payment cap on a single request
	OfflineCap       int             // max unsynced watch transactions
	ReloadThreshold  decimal.Decimal // auto-reload arms below this balance
	ReloadTarget     decimal.Decimal // auto-reload fills back up to this
	EmergencyFeeRate decimal.Decimal // overdraft surcharge rate
}

// DefaultLimits returns the reference thresholds.
func DefaultLimits() Limits {
	return Limits{
		WalletCap:        decimal.NewFromInt(500),
		LoadMax:          decimal.NewFromInt(500),
		PaymentLimit:     decimal.NewFromInt(200),
		OfflineCap:       5,
		ReloadThreshold:  decimal.NewFromInt(50),
		ReloadTarget:     decimal.NewFromInt(200),
		EmergencyFeeRate: decimal.NewFromFloat(0.04),
	}
}

// EmergencyDebit returns the total debit for an overdraft payment:
// the requested amount plus the surcharge.
func (l Limits) EmergencyDebit(amount decimal.Decimal) decimal.Decimal {
	return amount.Add(amount.Mul(l.EmergencyFeeRate))
}

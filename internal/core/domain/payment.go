package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest is the single outstanding merchant-initiated request.
// At most one exists system-wide; a nil pointer in GlobalState means none
// is pending, and a new request overwrites the old.
type PaymentRequest struct {
	Origin    string          `json:"origin"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

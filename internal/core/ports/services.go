package ports

import (
	"context"
	"time"

	"zippay/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// LedgerService is the reconciliation engine: every ledger-mutating
// operation of the payment network, plus a read-only snapshot.
// Implementations serialize all mutations behind a single writer.
type LedgerService interface {
	// LoadTopUp credits the watch wallet from the linked bank account.
	LoadTopUp(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error)
	// CreatePaymentRequest fills the single pending-request slot. It is a
	// silent no-op when the merchant terminal is inactive; the returned
	// bool reports whether a request was actually placed.
	CreatePaymentRequest(ctx context.Context, origin string, amount decimal.Decimal) (bool, error)
	// ResolvePaymentRequest approves or denies the pending request.
	// Denial clears the slot and reports Cancelled.
	ResolvePaymentRequest(ctx context.Context, approve bool) error
	// SyncWatch merges staged watch debits into the durable history.
	SyncWatch(ctx context.Context) error
	// SettleMerchant moves the merchant balance to its bank ledger and
	// returns the amount settled (zero when there was nothing to settle).
	SettleMerchant(ctx context.Context) (decimal.Decimal, error)
	// SetConnectivity toggles a link flag.
	SetConnectivity(ctx context.Context, channel domain.Channel, on bool) error
	// SetAutoReload toggles the automatic top-up feature.
	SetAutoReload(ctx context.Context, enabled bool)
	// ToggleActive flips a device's servicing switch and returns the new value.
	ToggleActive(ctx context.Context, side domain.Side) (bool, error)
	// Snapshot returns a read-only view for advisory collaborators.
	Snapshot(ctx context.Context) domain.Snapshot
}

// AlertLevel classifies an advisory message.
type AlertLevel string

const (
	AlertSuccess AlertLevel = "success"
	AlertError   AlertLevel = "error"
	AlertInfo    AlertLevel = "info"
)

// Notifier carries transient advisory messages to the presentation layer,
// distinguishing watch-local context from companion-app context. Delivery is
// best-effort; the ledger never depends on it.
type Notifier interface {
	WatchAlert(ctx context.Context, message string, level AlertLevel)
	PhoneAlert(ctx context.Context, message string, level AlertLevel)
}

// TokenService handles operator session tokens.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session claims.
type TokenClaims struct {
	Subject string
}

// HashService handles operator PIN hashing (Argon2id).
type HashService interface {
	Hash(pin string) (string, error)
	Verify(pin string, hash string) (bool, error)
}

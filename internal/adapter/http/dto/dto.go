package dto

import (
	"time"

	"zippay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SessionRequest is the request body for opening an operator session.
type SessionRequest struct {
	PIN string `json:"pin" binding:"required,min=4,max=12"`
}

// SessionResponse is the response body for a successful session.
type SessionResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// LoadRequest is the request body for a wallet top-up.
type LoadRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// AutoReloadRequest toggles the automatic top-up feature.
type AutoReloadRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PaymentCreateRequest is the request body for a merchant payment request.
type PaymentCreateRequest struct {
	Origin string          `json:"origin" binding:"max=100"` // empty falls back to the configured terminal name
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PaymentCreateResponse reports whether the request reached the watch.
type PaymentCreateResponse struct {
	Placed bool `json:"placed"`
}

// PaymentResolveRequest approves or denies the pending payment request.
type PaymentResolveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ConnectivityRequest toggles a link channel.
type ConnectivityRequest struct {
	Channel string `json:"channel" binding:"required,oneof=bluetooth wifi"`
	On      *bool  `json:"on" binding:"required"`
}

// DeviceToggleRequest flips a device's servicing switch.
type DeviceToggleRequest struct {
	Side string `json:"side" binding:"required,oneof=user merchant"`
}

// DeviceToggleResponse reports the new switch position.
type DeviceToggleResponse struct {
	Side   string `json:"side"`
	Active bool   `json:"active"`
}

// SettleResponse is the response body for a merchant settlement.
type SettleResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransactionResponse is the wire form of a ledger transaction.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    string          `json:"timestamp"`
	Kind         string          `json:"kind"`
	Counterparty string          `json:"counterparty"`
}

// SnapshotResponse is the read-only state view.
type SnapshotResponse struct {
	UserBalance        decimal.Decimal         `json:"user_balance"`
	BankBalance        decimal.Decimal         `json:"bank_balance"`
	MerchantBalance    decimal.Decimal         `json:"merchant_balance"`
	SettledBalance     decimal.Decimal         `json:"settled_balance"`
	UnsyncedCount      int                     `json:"unsynced_count"`
	UserActive         bool                    `json:"user_active"`
	MerchantActive     bool                    `json:"merchant_active"`
	AutoReload         bool                    `json:"auto_reload"`
	Bluetooth          bool                    `json:"bluetooth"`
	Wifi               bool                    `json:"wifi"`
	PendingRequest     *PendingRequestResponse `json:"pending_request,omitempty"`
	RecentTransactions []TransactionResponse   `json:"recent_transactions"`
}

// PendingRequestResponse is the wire form of the pending payment slot.
type PendingRequestResponse struct {
	Origin    string          `json:"origin"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

// ToTransactionResponse maps a domain transaction to its wire form.
func ToTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Amount:       tx.Amount,
		Timestamp:    tx.Timestamp.UTC().Format(time.RFC3339),
		Kind:         string(tx.Kind),
		Counterparty: tx.Counterparty,
	}
}

// ToSnapshotResponse maps a domain snapshot to its wire form.
func ToSnapshotResponse(snap domain.Snapshot) SnapshotResponse {
	out := SnapshotResponse{
		UserBalance:        snap.UserBalance,
		BankBalance:        snap.BankBalance,
		MerchantBalance:    snap.MerchantBalance,
		SettledBalance:     snap.SettledBalance,
		UnsyncedCount:      snap.UnsyncedCount,
		UserActive:         snap.UserActive,
		MerchantActive:     snap.MerchantActive,
		AutoReload:         snap.AutoReload,
		Bluetooth:          snap.Connectivity.Bluetooth,
		Wifi:               snap.Connectivity.Wifi,
		RecentTransactions: make([]TransactionResponse, 0, len(snap.RecentTransactions)),
	}
	for _, tx := range snap.RecentTransactions {
		out.RecentTransactions = append(out.RecentTransactions, ToTransactionResponse(tx))
	}
	if snap.PendingRequest != nil {
		out.PendingRequest = &PendingRequestResponse{
			Origin:    snap.PendingRequest.Origin,
			Amount:    snap.PendingRequest.Amount,
			CreatedAt: snap.PendingRequest.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}

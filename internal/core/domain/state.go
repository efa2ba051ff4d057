package domain

import (
	"github.com/shopspring/decimal"
)

// GlobalState is the combined ledger state owned by a single writer.
// All mutations happen through the ledger service under one lock.
type GlobalState struct {
	User         UserWallet      `json:"user_wallet"`
	Merchant     MerchantWallet  `json:"merchant_wallet"`
	Pending      *PaymentRequest `json:"pending_payment_request,omitempty"`
	Connectivity Connectivity    `json:"connectivity"`
}

// NewInitialState returns the state used when no snapshot exists:
// empty wallets, the given bank balance, both sides active, connectivity
// off, auto-reload off.
func NewInitialState(bankBalance decimal.Decimal) *GlobalState {
	return &GlobalState{
		User: UserWallet{
			Balance:     decimal.Zero,
			BankBalance: bankBalance,
			Active:      true,
		},
		Merchant: MerchantWallet{
			Balance:        decimal.Zero,
			SettledBalance: decimal.Zero,
			Active:         true,
		},
	}
}

// WatchLinked reports whether the watch can talk to the phone:
// Bluetooth up and the watch active.
func (s *GlobalState) WatchLinked() bool {
	return s.Connectivity.Bluetooth && s.User.Active
}

// LoadReady reports whether a top-up can reach the wallet:
// Wi-Fi up on top of an established watch link.
func (s *GlobalState) LoadReady() bool {
	return s.Connectivity.Wifi && s.WatchLinked()
}

// Clone returns a deep copy safe to hand to readers outside the engine lock.
func (s *GlobalState) Clone() *GlobalState {
	out := &GlobalState{
		User:         s.User.Clone(),
		Merchant:     s.Merchant.Clone(),
		Connectivity: s.Connectivity,
	}
	if s.Pending != nil {
		p := *s.Pending
		out.Pending = &p
	}
	return out
}

// Snapshot is the read-only state view exposed to advisory collaborators.
type Snapshot struct {
	UserBalance        decimal.Decimal `json:"user_balance"`
	BankBalance        decimal.Decimal `json:"bank_balance"`
	MerchantBalance    decimal.Decimal `json:"merchant_balance"`
	SettledBalance     decimal.Decimal `json:"settled_balance"`
	UnsyncedCount      int             `json:"unsynced_count"`
	UserActive         bool            `json:"user_active"`
	MerchantActive     bool            `json:"merchant_active"`
	AutoReload         bool            `json:"auto_reload"`
	Connectivity       Connectivity    `json:"connectivity"`
	PendingRequest     *PaymentRequest `json:"pending_request,omitempty"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
}

// Snapshot condenses the state for advisory readers, carrying the last
// limit entries of the durable user history.
func (s *GlobalState) Snapshot(limit int) Snapshot {
	recent := s.User.History
	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	snap := Snapshot{
		UserBalance:        s.User.Balance,
		BankBalance:        s.User.BankBalance,
		MerchantBalance:    s.Merchant.Balance,
		SettledBalance:     s.Merchant.SettledBalance,
		UnsyncedCount:      s.User.UnsyncedCount,
		UserActive:         s.User.Active,
		MerchantActive:     s.Merchant.Active,
		AutoReload:         s.User.AutoReload,
		Connectivity:       s.Connectivity,
		RecentTransactions: append([]Transaction(nil), recent...),
	}
	if s.Pending != nil {
		p := *s.Pending
		snap.PendingRequest = &p
	}
	return snap
}

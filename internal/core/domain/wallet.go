package domain

import (
	"github.com/shopspring/decimal"
)

// UserWallet is the watch-side wallet plus its phone/bank funding source.
// History is the durable phone-side log; PendingSync stages watch-originated
// debits until an explicit sync merges them into History.
type UserWallet struct {
	Balance       decimal.Decimal `json:"balance"`
	BankBalance   decimal.Decimal `json:"bank_balance"`
	History       []Transaction   `json:"history"`
	PendingSync   []Transaction   `json:"pending_sync"`
	UnsyncedCount int             `json:"unsynced_count"`
	Active        bool            `json:"active"`
	AutoReload    bool            `json:"auto_reload"`
}

// MerchantWallet collects credited payments until settlement moves them to
// the merchant's external bank. Balance never goes negative.
type MerchantWallet struct {
	Balance        decimal.Decimal `json:"balance"`
	SettledBalance decimal.Decimal `json:"settled_balance"`
	History        []Transaction   `json:"history"`
	Active         bool            `json:"active"`
}

// InDebt reports whether the wallet carries an unpaid emergency overdraft.
func (w *UserWallet) InDebt() bool {
	return w.Balance.IsNegative()
}

// Clone returns a deep copy safe to hand to readers outside the engine lock.
func (w *UserWallet) Clone() UserWallet {
	out := *w
	out.History = append([]Transaction(nil), w.History...)
	out.PendingSync = append([]Transaction(nil), w.PendingSync...)
	return out
}

// Clone returns a deep copy safe to hand to readers outside the engine lock.
func (w *MerchantWallet) Clone() MerchantWallet {
	out := *w
	out.History = append([]Transaction(nil), w.History...)
	return out
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of money movement.
type TransactionKind string

const (
	TransactionKindCredit TransactionKind = "CREDIT"
	TransactionKindDebit  TransactionKind = "DEBIT"
)

// Well-known counterparty labels.
const (
	CounterpartyBank       = "Primary Bank"
	CounterpartyAutoReload = "Auto-Reload (Bank)"

	// EmergencySuffix annotates debits taken via the overdraft path.
	EmergencySuffix = " (Emergency)"
)

// Transaction is an immutable ledger entry. Entries are created once, never
// mutated, and prepended (newest first) into whichever log they land in.
type Transaction struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
	Kind         TransactionKind `json:"kind"`
	Counterparty string          `json:"counterparty"`
}

// NewTransaction builds a ledger entry stamped with the current wall clock.
func NewTransaction(prefix string, amount decimal.Decimal, kind TransactionKind, counterparty string) Transaction {
	return Transaction{
		ID:           NewTransactionID(prefix),
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
		Kind:         kind,
		Counterparty: counterparty,
	}
}

// NewTransactionID generates a reference like TXN-LOAD-9F2C41AB.
func NewTransactionID(prefix string) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	if prefix == "" {
		return "TXN-" + short
	}
	return "TXN-" + prefix + "-" + short
}

// IsEmergency reports whether this debit was taken via the overdraft path.
func (t Transaction) IsEmergency() bool {
	return t.Kind == TransactionKindDebit && strings.HasSuffix(t.Counterparty, EmergencySuffix)
}

// Prepend inserts tx at the front of log, preserving newest-first order.
func Prepend(log []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(log)+1)
	out = append(out, tx)
	return append(out, log...)
}

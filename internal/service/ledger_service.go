package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"zippay/internal/core/domain"
	"zippay/internal/core/ports"
	"zippay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultSnapshotDepth = 10

// LedgerServiceImpl implements ports.LedgerService.
//
// It is the single writer over the combined {user wallet, merchant wallet,
// pending payment request, connectivity} state: every mutating operation is
// an atomic read-modify-write under one mutex, snapshotted to the state
// store before the lock is released. The auto-reload settling delay (see
// reload_monitor.go) is the only action that spans time without the lock.
type LedgerServiceImpl struct {
	mu    sync.Mutex
	state *domain.GlobalState

	limits        domain.Limits
	userLabel     string
	snapshotDepth int
	reloadDelay   time.Duration

	store    ports.StateStore
	cache    ports.SnapshotCache
	notifier ports.Notifier
	log      zerolog.Logger

	// reloadInFlight is the re-entrancy guard of the auto-reload monitor.
	reloadInFlight bool
}

// LedgerOptions carries the tunables of the payment network.
type LedgerOptions struct {
	Limits        domain.Limits
	UserLabel     string // counterparty label on merchant-side credits
	SnapshotDepth int    // recent transactions exposed to advisory readers
	ReloadDelay   time.Duration
}

// NewLedgerService creates the engine around an already-loaded state.
// cache and notifier may be nil; they are best-effort collaborators.
func NewLedgerService(
	state *domain.GlobalState,
	opts LedgerOptions,
	store ports.StateStore,
	cache ports.SnapshotCache,
	notifier ports.Notifier,
	log zerolog.Logger,
) *LedgerServiceImpl {
	if state == nil {
		state = domain.NewInitialState(decimal.Zero)
	}
	if opts.SnapshotDepth <= 0 {
		opts.SnapshotDepth = defaultSnapshotDepth
	}
	if opts.UserLabel == "" {
		opts.UserLabel = "ZipPay User"
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s := &LedgerServiceImpl{
		state:         state,
		limits:        opts.Limits,
		userLabel:     opts.UserLabel,
		snapshotDepth: opts.SnapshotDepth,
		reloadDelay:   opts.ReloadDelay,
		store:         store,
		cache:         cache,
		notifier:      notifier,
		log:           log,
	}

	// A restored state may already satisfy every reload condition. Evaluate
	// once at startup so a restart does not wait for the next mutation.
	s.mu.Lock()
	s.evaluateReloadLocked()
	s.mu.Unlock()
	return s
}

// LoadTopUp credits the watch wallet from the linked bank. Top-ups originate
// phone-side, already online, so the credit lands directly in history and
// never touches the sync queue.
func (s *LedgerServiceImpl) LoadTopUp(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &s.state.User
	if !u.Active {
		s.notifier.WatchAlert(ctx, "WATCH INACTIVE", ports.AlertError)
		s.notifier.PhoneAlert(ctx, "Watch is inactive. Please activate it first.", ports.AlertError)
		return nil, apperror.ErrInactiveDevice("watch")
	}
	if !s.state.WatchLinked() || !s.state.Connectivity.Wifi {
		s.notifier.WatchAlert(ctx, "SYNC ERROR", ports.AlertError)
		s.notifier.PhoneAlert(ctx, "Check connectivity. Bluetooth and Wi-Fi are required.", ports.AlertError)
		return nil, apperror.ErrLinkRequired()
	}
	if !amount.IsPositive() || amount.GreaterThan(s.limits.LoadMax) {
		return nil, apperror.ErrInvalidAmount()
	}
	if u.Balance.Add(amount).GreaterThan(s.limits.WalletCap) {
		s.notifier.WatchAlert(ctx, "LIMIT REACHED", ports.AlertError)
		s.notifier.PhoneAlert(ctx, fmt.Sprintf("Maximum wallet limit of %s reached.", s.limits.WalletCap.StringFixed(2)), ports.AlertError)
		return nil, apperror.ErrWalletCapExceeded()
	}
	if u.BankBalance.LessThan(amount) {
		s.notifier.WatchAlert(ctx, "LOW BANK BAL", ports.AlertError)
		s.notifier.PhoneAlert(ctx, "Insufficient bank balance for this load.", ports.AlertError)
		return nil, apperror.ErrInsufficientFunding()
	}

	tx := domain.NewTransaction("LOAD", amount, domain.TransactionKindCredit, domain.CounterpartyBank)
	u.Balance = u.Balance.Add(amount)
	u.BankBalance = u.BankBalance.Sub(amount)
	u.History = domain.Prepend(u.History, tx)

	s.persistLocked(ctx)
	s.notifier.WatchAlert(ctx, fmt.Sprintf("+%s LOADED", amount.StringFixed(2)), ports.AlertSuccess)
	s.notifier.PhoneAlert(ctx, fmt.Sprintf("Successfully loaded %s into the watch wallet", amount.StringFixed(2)), ports.AlertSuccess)

	s.log.Info().
		Str("tx_id", tx.ID).
		Str("amount", amount.String()).
		Str("balance", u.Balance.String()).
		Msg("wallet loaded")

	s.evaluateReloadLocked()
	return &tx, nil
}

// CreatePaymentRequest fills the single pending-request slot. The request is
// allowed to exist even with Bluetooth and Wi-Fi down; the watch discovers
// it asynchronously. A request already in the slot is superseded.
func (s *LedgerServiceImpl) CreatePaymentRequest(ctx context.Context, origin string, amount decimal.Decimal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Merchant.Active {
		// Terminal switched off: silently ignore, no error surfaced.
		return false, nil
	}
	if !s.state.User.Active {
		s.notifier.WatchAlert(ctx, "WATCH INACTIVE", ports.AlertError)
		return false, apperror.ErrLinkRequired()
	}
	if !amount.IsPositive() {
		return false, apperror.ErrInvalidAmount()
	}
	if amount.GreaterThan(s.limits.PaymentLimit) {
		s.notifier.PhoneAlert(ctx, fmt.Sprintf("Transaction exceeds micro-payment limit of %s", s.limits.PaymentLimit.StringFixed(2)), ports.AlertError)
		return false, apperror.ErrAmountExceedsLimit()
	}

	s.state.Pending = &domain.PaymentRequest{
		Origin:    origin,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	s.persistLocked(ctx)

	s.log.Info().
		Str("origin", origin).
		Str("amount", amount.String()).
		Msg("payment request placed")
	return true, nil
}

// ResolvePaymentRequest approves or denies the pending request. Approval
// debits the user (with the emergency overdraft rule), stages the debit in
// the sync queue, and credits the merchant history directly.
func (s *LedgerServiceImpl) ResolvePaymentRequest(ctx context.Context, approve bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !approve {
		if s.state.Pending != nil {
			s.state.Pending = nil
			s.persistLocked(ctx)
		}
		s.notifier.WatchAlert(ctx, "PAYMENT CANCEL", ports.AlertError)
		return apperror.ErrCancelled()
	}

	req := s.state.Pending
	if req == nil {
		return nil
	}

	u := &s.state.User
	if !u.Active {
		s.notifier.WatchAlert(ctx, "WATCH INACTIVE", ports.AlertError)
		return apperror.ErrInactiveDevice("watch")
	}

	// Overdraft classification. A wallet at exactly zero still counts as
	// "has funds, just short" and takes the fee path, not the debt stop.
	emergency := false
	finalDebit := req.Amount
	if u.Balance.LessThan(req.Amount) {
		if u.Balance.IsNegative() {
			s.notifier.WatchAlert(ctx, "DEBT PENDING", ports.AlertError)
			return apperror.ErrDebtPending()
		}
		emergency = true
		finalDebit = s.limits.EmergencyDebit(req.Amount)
	}

	if u.UnsyncedCount >= s.limits.OfflineCap {
		s.notifier.WatchAlert(ctx, "SYNC REQUIRED", ports.AlertError)
		return apperror.ErrSyncRequired()
	}

	counterparty := req.Origin
	if emergency {
		counterparty += domain.EmergencySuffix
	}
	// Both legs of one payment share an ID so the merchant credit stays
	// correlatable with the user debit.
	debit := domain.NewTransaction("", finalDebit, domain.TransactionKindDebit, counterparty)
	credit := domain.NewTransaction("", req.Amount, domain.TransactionKindCredit, s.userLabel)
	credit.ID = debit.ID

	u.Balance = u.Balance.Sub(finalDebit)
	u.PendingSync = domain.Prepend(u.PendingSync, debit)
	u.UnsyncedCount++

	m := &s.state.Merchant
	m.Balance = m.Balance.Add(req.Amount)
	m.History = domain.Prepend(m.History, credit)

	s.state.Pending = nil
	s.persistLocked(ctx)

	if emergency {
		s.notifier.WatchAlert(ctx, "EMERGENCY PAID", ports.AlertSuccess)
	} else {
		s.notifier.WatchAlert(ctx, "PAID SUCCESS", ports.AlertSuccess)
	}

	s.log.Info().
		Str("tx_id", debit.ID).
		Str("origin", req.Origin).
		Str("amount", req.Amount.String()).
		Str("debit", finalDebit.String()).
		Bool("emergency", emergency).
		Int("unsynced", u.UnsyncedCount).
		Msg("payment approved")

	s.evaluateReloadLocked()
	return nil
}

// SyncWatch merges staged watch debits into the durable history, newest
// first, preserving their relative order. This is the sole path by which
// watch-recorded debits become visible in the phone-side history.
func (s *LedgerServiceImpl) SyncWatch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Connectivity.Bluetooth {
		s.notifier.WatchAlert(ctx, "SYNC FAILED", ports.AlertError)
		s.notifier.PhoneAlert(ctx, "Bluetooth connection required to sync history.", ports.AlertError)
		return apperror.ErrLinkRequired()
	}

	u := &s.state.User
	if len(u.PendingSync) == 0 {
		// Nothing staged: idempotent no-op.
		return nil
	}

	merged := len(u.PendingSync)
	u.History = append(append([]domain.Transaction(nil), u.PendingSync...), u.History...)
	u.PendingSync = nil
	u.UnsyncedCount = 0

	s.persistLocked(ctx)
	s.notifier.WatchAlert(ctx, "SYNC COMPLETE", ports.AlertSuccess)
	s.notifier.PhoneAlert(ctx, "Transaction history synced from watch successfully.", ports.AlertSuccess)

	s.log.Info().Int("merged", merged).Msg("watch history synced")
	return nil
}

// SettleMerchant atomically moves the merchant's collected balance to its
// bank ledger and returns the amount settled.
func (s *LedgerServiceImpl) SettleMerchant(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &s.state.Merchant
	if !m.Balance.IsPositive() {
		return decimal.Zero, nil
	}

	amount := m.Balance
	m.SettledBalance = m.SettledBalance.Add(amount)
	m.Balance = decimal.Zero

	s.persistLocked(ctx)
	s.notifier.PhoneAlert(ctx, fmt.Sprintf("Settlement of %s completed to your bank account.", amount.StringFixed(2)), ports.AlertSuccess)

	s.log.Info().Str("amount", amount.String()).Msg("merchant settled")
	return amount, nil
}

// SetConnectivity toggles a link flag. The gate itself never mutates ledger
// state; the toggle only feeds the predicates and the reload monitor.
func (s *LedgerServiceImpl) SetConnectivity(ctx context.Context, channel domain.Channel, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch channel {
	case domain.ChannelBluetooth:
		s.state.Connectivity.Bluetooth = on
	case domain.ChannelWifi:
		s.state.Connectivity.Wifi = on
	default:
		return apperror.Validation(fmt.Sprintf("unknown connectivity channel %q", channel))
	}

	s.persistLocked(ctx)
	s.log.Info().Str("channel", string(channel)).Bool("on", on).Msg("connectivity changed")
	s.evaluateReloadLocked()
	return nil
}

// SetAutoReload toggles the automatic top-up feature.
func (s *LedgerServiceImpl) SetAutoReload(ctx context.Context, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User.AutoReload = enabled
	s.persistLocked(ctx)

	if enabled {
		s.notifier.PhoneAlert(ctx, fmt.Sprintf("Auto-reload enabled (below %s refills to %s)",
			s.limits.ReloadThreshold.StringFixed(0), s.limits.ReloadTarget.StringFixed(0)), ports.AlertInfo)
	} else {
		s.notifier.PhoneAlert(ctx, "Auto-reload disabled", ports.AlertInfo)
	}

	s.log.Info().Bool("enabled", enabled).Msg("auto-reload toggled")
	s.evaluateReloadLocked()
}

// ToggleActive flips a device's servicing switch and returns the new value.
func (s *LedgerServiceImpl) ToggleActive(ctx context.Context, side domain.Side) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active bool
	switch side {
	case domain.SideUser:
		s.state.User.Active = !s.state.User.Active
		active = s.state.User.Active
		if active {
			s.notifier.WatchAlert(ctx, "WATCH ACTIVE", ports.AlertSuccess)
		} else {
			s.notifier.WatchAlert(ctx, "WATCH INACTIVE", ports.AlertError)
		}
	case domain.SideMerchant:
		s.state.Merchant.Active = !s.state.Merchant.Active
		active = s.state.Merchant.Active
	default:
		return false, apperror.Validation(fmt.Sprintf("unknown device side %q", side))
	}

	s.persistLocked(ctx)
	s.log.Info().Str("side", string(side)).Bool("active", active).Msg("device toggled")
	s.evaluateReloadLocked()
	return active, nil
}

// Snapshot returns a read-only view for advisory collaborators.
func (s *LedgerServiceImpl) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot(s.snapshotDepth)
}

// persistLocked snapshots the whole state after a successful mutation.
// Caller holds the lock. The mutation has already happened; persistence
// failures are logged, never propagated, and never roll back the ledger.
func (s *LedgerServiceImpl) persistLocked(ctx context.Context) {
	if s.store != nil {
		if err := s.store.Save(ctx, s.state); err != nil {
			s.log.Error().Err(err).Msg("failed to persist state snapshot")
		}
	}
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to marshal state for cache")
		return
	}
	if err := s.cache.Set(ctx, raw); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache state snapshot")
	}
}

// NopNotifier discards all alerts.
type NopNotifier struct{}

func (NopNotifier) WatchAlert(context.Context, string, ports.AlertLevel) {}
func (NopNotifier) PhoneAlert(context.Context, string, ports.AlertLevel) {}

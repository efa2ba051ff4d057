package service

import (
	"context"
	"fmt"
	"time"

	"zippay/internal/core/domain"
	"zippay/internal/core/ports"
)

// Auto-reload monitor.
//
// The monitor is level-triggered: evaluateReloadLocked runs after every
// mutation that can change its inputs (balance, connectivity, device active
// flag, the enabled flag). Arming schedules a one-shot settling delay; the
// fire handler re-validates everything against the then-current state, so a
// condition that flickered off during the delay cancels the reload cleanly.

// evaluateReloadLocked arms the settling timer when all reload conditions
// hold and no reload is already in flight. Caller holds the lock.
func (s *LedgerServiceImpl) evaluateReloadLocked() {
	if s.reloadInFlight {
		return
	}
	u := &s.state.User
	if !u.AutoReload || !s.state.LoadReady() || !u.Balance.LessThan(s.limits.ReloadThreshold) {
		return
	}

	s.reloadInFlight = true
	s.log.Debug().
		Str("balance", u.Balance.String()).
		Dur("delay", s.reloadDelay).
		Msg("auto-reload armed")
	time.AfterFunc(s.reloadDelay, s.fireAutoReload)
}

// fireAutoReload runs once per armed timer, on the timer goroutine. The
// guard clears on every outcome; re-arming waits for the next state change.
func (s *LedgerServiceImpl) fireAutoReload() {
	ctx := context.Background()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadInFlight = false

	u := &s.state.User
	if !u.AutoReload || !s.state.LoadReady() || !u.Balance.LessThan(s.limits.ReloadThreshold) {
		s.log.Debug().Msg("auto-reload skipped: conditions no longer hold")
		return
	}

	// Recomputed here, not at arming time: the balance may have moved
	// during the settling delay.
	reloadAmount := s.limits.ReloadTarget.Sub(u.Balance)
	if u.BankBalance.LessThan(reloadAmount) {
		s.notifier.PhoneAlert(ctx, "Auto-reload failed: insufficient bank balance", ports.AlertError)
		s.log.Warn().
			Str("needed", reloadAmount.String()).
			Str("bank", u.BankBalance.String()).
			Msg("auto-reload failed: insufficient bank balance")
		return
	}

	tx := domain.NewTransaction("AUTO", reloadAmount, domain.TransactionKindCredit, domain.CounterpartyAutoReload)
	u.Balance = u.Balance.Add(reloadAmount)
	u.BankBalance = u.BankBalance.Sub(reloadAmount)
	u.History = domain.Prepend(u.History, tx)

	s.persistLocked(ctx)
	s.notifier.WatchAlert(ctx, fmt.Sprintf("+%s AUTO-LOADED", reloadAmount.StringFixed(0)), ports.AlertSuccess)
	s.notifier.PhoneAlert(ctx, fmt.Sprintf("Auto-reload: %s loaded into watch wallet", reloadAmount.StringFixed(2)), ports.AlertSuccess)

	s.log.Info().
		Str("tx_id", tx.ID).
		Str("amount", reloadAmount.String()).
		Str("balance", u.Balance.String()).
		Msg("auto-reload completed")
}

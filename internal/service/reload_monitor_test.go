package service

import (
	"context"
	"testing"
	"time"

	"zippay/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reads race with the timer goroutine once a reload is armed, so these
// tests observe state through Snapshot, which takes the engine lock.

func countAutoReloads(snap domain.Snapshot) int {
	n := 0
	for _, tx := range snap.RecentTransactions {
		if tx.Counterparty == domain.CounterpartyAutoReload {
			n++
		}
	}
	return n
}

func TestReloadMonitor_ArmsAndFires(t *testing.T) {
	d := setupLedgerService(t, func(s *domain.GlobalState) { s.User.Balance = dec(40) })
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.svc.SetAutoReload(ctx, true)

	require.Eventually(t, func() bool {
		return d.svc.Snapshot(ctx).UserBalance.Equal(dec(200))
	}, time.Second, 5*time.Millisecond)

	snap := d.svc.Snapshot(ctx)
	assert.True(t, snap.BankBalance.Equal(dec(9840)))
	require.NotEmpty(t, snap.RecentTransactions)
	tx := snap.RecentTransactions[0]
	assert.Equal(t, domain.CounterpartyAutoReload, tx.Counterparty)
	assert.Equal(t, domain.TransactionKindCredit, tx.Kind)
	assert.True(t, tx.Amount.Equal(dec(160)))
	assert.True(t, d.notifier.hasWatch("+160 AUTO-LOADED"))
}

func TestReloadMonitor_FiresFromRestoredState(t *testing.T) {
	// A restart over a persisted state that already satisfies every reload
	// condition fires without waiting for a mutation to edge it.
	d := setupLedgerService(t, func(s *domain.GlobalState) {
		s.User.Balance = dec(40)
		s.User.AutoReload = true
	})
	defer d.ctrl.Finish()
	ctx := context.Background()

	require.Eventually(t, func() bool {
		return d.svc.Snapshot(ctx).UserBalance.Equal(dec(200))
	}, time.Second, 5*time.Millisecond)

	snap := d.svc.Snapshot(ctx)
	assert.True(t, snap.BankBalance.Equal(dec(9840)))
	assert.Equal(t, 1, countAutoReloads(snap))
}

func TestReloadMonitor_FiresAfterPaymentDropsBalance(t *testing.T) {
	d := setupLedgerService(t, func(s *domain.GlobalState) { s.User.Balance = dec(100) })
	defer d.ctrl.Finish()
	ctx := context.Background()

	// 100 is above the threshold: enabling alone must not arm.
	d.svc.SetAutoReload(ctx, true)
	time.Sleep(3 * d.svc.reloadDelay)
	assert.True(t, d.svc.Snapshot(ctx).UserBalance.Equal(dec(100)))

	_, err := d.svc.CreatePaymentRequest(ctx, "Corner Cafe", dec(60))
	require.NoError(t, err)
	require.NoError(t, d.svc.ResolvePaymentRequest(ctx, true))

	require.Eventually(t, func() bool {
		return d.svc.Snapshot(ctx).UserBalance.Equal(dec(200))
	}, time.Second, 5*time.Millisecond)
}

func TestReloadMonitor_NotArmedWithoutConnectivity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.GlobalState)
	}{
		{"bluetooth down", func(s *domain.GlobalState) { s.Connectivity.Bluetooth = false }},
		{"wifi down", func(s *domain.GlobalState) { s.Connectivity.Wifi = false }},
		{"watch inactive", func(s *domain.GlobalState) { s.User.Active = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupLedgerService(t, func(s *domain.GlobalState) { s.User.Balance = dec(40) }, tt.mutate)
			defer d.ctrl.Finish()
			ctx := context.Background()

			d.svc.SetAutoReload(ctx, true)
			time.Sleep(3 * d.svc.reloadDelay)
			assert.True(t, d.svc.Snapshot(ctx).UserBalance.Equal(dec(40)))
		})
	}
}

func TestReloadMonitor_RevalidatesAfterDelay(t *testing.T) {
	d := setupLedgerService(t, func(s *domain.GlobalState) { s.User.Balance = dec(40) })
	defer d.ctrl.Finish()
	ctx := context.Background()

	// Arm, then drop Bluetooth inside the settling window: the fire
	// handler must see the flicker and skip the reload.
	d.svc.SetAutoReload(ctx, true)
	require.NoError(t, d.svc.SetConnectivity(ctx, domain.ChannelBluetooth, false))

	time.Sleep(3 * d.svc.reloadDelay)
	snap := d.svc.Snapshot(ctx)
	assert.True(t, snap.UserBalance.Equal(dec(40)))
	assert.Equal(t, 0, countAutoReloads(snap))

	// Restoring the link re-arms from the state change.
	require.NoError(t, d.svc.SetConnectivity(ctx, domain.ChannelBluetooth, true))
	require.Eventually(t, func() bool {
		return d.svc.Snapshot(ctx).UserBalance.Equal(dec(200))
	}, time.Second, 5*time.Millisecond)
}

func TestReloadMonitor_DisableDuringDelayCancels(t *testing.T) {
	d := setupLedgerService(t, func(s *domain.GlobalState) { s.User.Balance = dec(40) })
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.svc.SetAutoReload(ctx, true)
	d.svc.SetAutoReload(ctx, false)

	time.Sleep(3 * d.svc.reloadDelay)
	assert.True(t, d.svc.Snapshot(ctx).UserBalance.Equal(dec(40)))
}

func TestReloadMonitor_InsufficientBank(t *testing.T) {
	d := setupLedgerService(t, func(s *domain.GlobalState) {
		s.User.Balance = dec(40)
		s.User.BankBalance = dec(100) // needs 160
	})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.svc.SetAutoReload(ctx, true)

	require.Eventually(t, func() bool {
		return d.notifier.hasPhoneContaining("insufficient bank balance")
	}, time.Second, 5*time.Millisecond)

	snap := d.svc.Snapshot(ctx)
	assert.True(t, snap.UserBalance.Equal(dec(40)))
	assert.True(t, snap.BankBalance.Equal(dec(100)))
	assert.Equal(t, 0, countAutoReloads(snap))
}

func TestReloadMonitor_SingleReloadPerArming(t *testing.T) {
	d := setupLedgerService(t, func(s *domain.GlobalState) { s.User.Balance = dec(40) })
	defer d.ctrl.Finish()
	ctx := context.Background()

	// Repeated state changes while a reload is in flight must not stack
	// additional timers.
	d.svc.SetAutoReload(ctx, true)
	d.svc.SetAutoReload(ctx, true)
	require.NoError(t, d.svc.SetConnectivity(ctx, domain.ChannelWifi, true))

	require.Eventually(t, func() bool {
		return d.svc.Snapshot(ctx).UserBalance.Equal(dec(200))
	}, time.Second, 5*time.Millisecond)

	time.Sleep(3 * d.svc.reloadDelay)
	snap := d.svc.Snapshot(ctx)
	assert.True(t, snap.UserBalance.Equal(dec(200)))
	assert.Equal(t, 1, countAutoReloads(snap))
}

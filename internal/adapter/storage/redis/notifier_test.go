package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"zippay/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubSubNotifier_PublishesAlerts(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	notifier := NewPubSubNotifier(client, zerolog.Nop())
	ctx := context.Background()

	sub := client.Subscribe(ctx, watchAlertChannel, phoneAlertChannel)
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	notifier.WatchAlert(ctx, "PAID SUCCESS", ports.AlertSuccess)
	notifier.PhoneAlert(ctx, "Settlement of 130.00 completed to your bank account.", ports.AlertInfo)

	recv := func() *goredis.Message {
		select {
		case msg := <-sub.Channel():
			return msg
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for alert")
			return nil
		}
	}

	first := recv()
	assert.Equal(t, watchAlertChannel, first.Channel)
	var env alertEnvelope
	require.NoError(t, json.Unmarshal([]byte(first.Payload), &env))
	assert.Equal(t, "PAID SUCCESS", env.Message)
	assert.Equal(t, ports.AlertSuccess, env.Level)
	assert.False(t, env.At.IsZero())

	second := recv()
	assert.Equal(t, phoneAlertChannel, second.Channel)
	require.NoError(t, json.Unmarshal([]byte(second.Payload), &env))
	assert.Equal(t, ports.AlertInfo, env.Level)
}

func TestPubSubNotifier_SwallowsPublishErrors(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	notifier := NewPubSubNotifier(client, zerolog.Nop())

	s.Close()

	// Must not panic or surface anything.
	notifier.WatchAlert(context.Background(), "SYNC COMPLETE", ports.AlertSuccess)
}

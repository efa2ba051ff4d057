package redis

import (
	"context"
	"encoding/json"
	"time"

	"zippay/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Pub/sub channels carrying device alerts to subscribed frontends.
const (
	watchAlertChannel = "zippay:alerts:watch"
	phoneAlertChannel = "zippay:alerts:phone"
)

// alertEnvelope is the published wire format.
type alertEnvelope struct {
	Message string           `json:"message"`
	Level   ports.AlertLevel `json:"level"`
	At      time.Time        `json:"at"`
}

// PubSubNotifier implements ports.Notifier over Redis pub/sub. Delivery is
// fire-and-forget: publish failures are logged and swallowed, matching the
// transient nature of the alerts themselves.
type PubSubNotifier struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewPubSubNotifier creates a Redis-backed alert notifier.
func NewPubSubNotifier(client *goredis.Client, log zerolog.Logger) *PubSubNotifier {
	return &PubSubNotifier{client: client, log: log}
}

// WatchAlert publishes a watch-face alert.
func (n *PubSubNotifier) WatchAlert(ctx context.Context, message string, level ports.AlertLevel) {
	n.publish(ctx, watchAlertChannel, message, level)
}

// PhoneAlert publishes a companion-app alert.
func (n *PubSubNotifier) PhoneAlert(ctx context.Context, message string, level ports.AlertLevel) {
	n.publish(ctx, phoneAlertChannel, message, level)
}

func (n *PubSubNotifier) publish(ctx context.Context, channel, message string, level ports.AlertLevel) {
	payload, err := json.Marshal(alertEnvelope{
		Message: message,
		Level:   level,
		At:      time.Now().UTC(),
	})
	if err != nil {
		n.log.Warn().Err(err).Msg("failed to encode alert")
		return
	}
	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		n.log.Warn().Err(err).Str("channel", channel).Msg("failed to publish alert")
	}
}

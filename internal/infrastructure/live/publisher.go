// Package live publishes shipment updates to the Redis pub/sub feed consumed
// by tracking views. Channel naming follows shipment:update:<trackingId>; a
// message is a sparse patch scoped to that id.
package live

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/api/metrics"
	"github.com/locatepro/tracking-system/internal/core/domain"
)

const updateChannelPrefix = "shipment:update:"

// updateEnvelope is the wire shape of one live update message.
type updateEnvelope struct {
	TrackingID string               `json:"trackingId"`
	Data       domain.ShipmentPatch `json:"data"`
}

// Publisher publishes one update synchronously. Subscribers that are offline
// miss the message; delivery is best effort by design of the feed.
type Publisher struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewPublisher(rdb *redis.Client, log zerolog.Logger) *Publisher {
	return &Publisher{rdb: rdb, log: log}
}

func (p *Publisher) PublishUpdate(ctx context.Context, trackingID string, patch domain.ShipmentPatch) error {
	payload, err := json.Marshal(updateEnvelope{TrackingID: trackingID, Data: patch})
	if err != nil {
		metrics.LiveUpdatesPublishedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("marshal update: %w", err)
	}

	if err := p.rdb.Publish(ctx, updateChannelPrefix+trackingID, payload).Err(); err != nil {
		metrics.LiveUpdatesPublishedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("publish update: %w", err)
	}

	metrics.LiveUpdatesPublishedTotal.WithLabelValues("ok").Inc()
	p.log.Debug().Str("tracking_id", trackingID).Msg("live update published")
	return nil
}

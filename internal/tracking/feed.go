package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

const updateChannelPrefix = "shipment:update:"

// updateChannel names the pub/sub channel carrying live updates for one
// tracking id. Subscribing to it is the "join" for that shipment.
func updateChannel(trackingID string) string {
	return updateChannelPrefix + trackingID
}

// Update is one live message: a sparse patch scoped to a tracking id.
type Update struct {
	TrackingID string               `json:"trackingId"`
	Data       domain.ShipmentPatch `json:"data"`
}

// Feed is the live update channel: a redis pub/sub subscription scoped to one
// tracking id at a time. Subscribing twice for the same id is a no-op;
// subscribing to a new id tears the previous subscription down first.
//
// Delivery is best effort from the moment of subscription: the underlying
// connection reconnects on its own, and missed messages are never replayed.
type Feed struct {
	rdb *redis.Client
	log zerolog.Logger

	mu         sync.Mutex
	gen        uint64
	trackingID string
	pubsub     *redis.PubSub
	cancel     context.CancelFunc
}

func NewFeed(rdb *redis.Client, log zerolog.Logger) *Feed {
	return &Feed{rdb: rdb, log: log}
}

// Subscribe opens the subscription for trackingID and delivers each matching
// update to handler from a background goroutine. Idempotent per id.
//
// The subscription is registered before it is confirmed, and the confirm runs
// without holding the mutex: Unsubscribe stays responsive and cancels a
// confirm that is still retrying against an unreachable server.
func (f *Feed) Subscribe(ctx context.Context, trackingID string, handler func(Update)) error {
	f.mu.Lock()
	if f.pubsub != nil && f.trackingID == trackingID {
		f.mu.Unlock()
		return nil
	}
	f.unsubscribeLocked()

	subCtx, cancel := context.WithCancel(ctx)
	pubsub := f.rdb.Subscribe(subCtx, updateChannel(trackingID))
	f.gen++
	gen := f.gen
	f.trackingID = trackingID
	f.pubsub = pubsub
	f.cancel = cancel
	f.mu.Unlock()

	// Confirm the subscription before reporting success; transient dial
	// failures are retried with exponential backoff.
	confirm := func() error {
		_, err := pubsub.Receive(subCtx)
		return err
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = 10 * time.Second
	err := backoff.Retry(confirm, backoff.WithContext(policy, subCtx))

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		// Torn down or replaced while the confirm was in flight.
		return fmt.Errorf("subscribe %s: %w", trackingID, context.Canceled)
	}
	if err != nil {
		f.unsubscribeLocked()
		return fmt.Errorf("subscribe %s: %w", trackingID, err)
	}

	go f.receive(subCtx, trackingID, pubsub, handler)

	f.log.Debug().Str("tracking_id", trackingID).Msg("live feed subscribed")
	return nil
}

// Unsubscribe closes the active subscription, including one whose confirm is
// still in flight. Safe to call when none is open.
func (f *Feed) Unsubscribe() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribeLocked()
}

// UnsubscribeFrom closes the subscription only if it is still bound to
// trackingID. A superseded subscriber uses it to release its own subscription
// without touching a successor's.
func (f *Feed) UnsubscribeFrom(trackingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.trackingID == trackingID {
		f.unsubscribeLocked()
	}
}

func (f *Feed) unsubscribeLocked() {
	if f.pubsub == nil {
		return
	}
	f.gen++
	f.cancel()
	if err := f.pubsub.Close(); err != nil {
		f.log.Debug().Err(err).Str("tracking_id", f.trackingID).Msg("pubsub close")
	}
	f.log.Debug().Str("tracking_id", f.trackingID).Msg("live feed unsubscribed")
	f.trackingID = ""
	f.pubsub = nil
	f.cancel = nil
}

func (f *Feed) receive(ctx context.Context, trackingID string, pubsub *redis.PubSub, handler func(Update)) {
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			f.dispatch(trackingID, []byte(msg.Payload), handler)
		}
	}
}

// dispatch decodes one raw message and delivers it iff it belongs to the
// currently tracked id. Messages for any other id (in-flight leftovers from a
// previous search) are dropped silently. Reports whether the handler was
// invoked.
func (f *Feed) dispatch(trackingID string, payload []byte, handler func(Update)) bool {
	var u Update
	if err := json.Unmarshal(payload, &u); err != nil {
		f.log.Debug().Err(err).Msg("malformed live update dropped")
		return false
	}
	if u.TrackingID != trackingID {
		f.log.Debug().
			Str("got", u.TrackingID).
			Str("want", trackingID).
			Msg("stale live update dropped")
		return false
	}
	handler(u)
	return true
}

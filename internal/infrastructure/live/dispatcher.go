package live

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/api/metrics"
	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

type job struct {
	trackingID string
	patch      domain.ShipmentPatch
}

// Dispatcher decouples publishing from the request path: updates are enqueued
// to a fixed set of workers using consistent hashing on the tracking id, which
// keeps per-shipment publish order intact while requests return immediately.
type Dispatcher struct {
	workers   []chan job
	publisher ports.UpdatePublisher
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, publisher ports.UpdatePublisher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan job, numWorkers),
		publisher: publisher,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// PublishUpdate enqueues the update for its shard worker. It never blocks the
// caller beyond channel capacity and never reports downstream publish errors;
// those are logged by the worker. Satisfies ports.UpdatePublisher.
func (d *Dispatcher) PublishUpdate(_ context.Context, trackingID string, patch domain.ShipmentPatch) error {
	idx := d.shardIndex(trackingID)
	d.workers[idx] <- job{trackingID: trackingID, patch: patch}
	metrics.LiveQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a tracking id deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			metrics.LiveQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.publisher.PublishUpdate(ctx, j.trackingID, j.patch); err != nil {
				d.log.Error().Err(err).
					Str("tracking_id", j.trackingID).
					Int("worker_id", id).
					Msg("live update publish failed")
			}
		}
	}
}

// Package metrics defines and registers all custom Prometheus metrics for the
// LocatePro tracking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at package load; the
// router exposes them on /metrics together with the echo request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "locatepro"

// ── Tracking metrics ──────────────────────────────────────────────────────────

// TrackLookupsTotal counts public tracking lookups.
// Label:
//   - result: "hit" (record returned), "miss" (unknown tracking id) or "error"
var TrackLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "track_lookups_total",
		Help:      "Total number of public tracking lookups, labelled by result.",
	},
	[]string{"result"},
)

// LiveUpdatesPublishedTotal counts live update publications to the pub/sub feed.
// Label:
//   - result: "ok" or "error"
var LiveUpdatesPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "live_updates_published_total",
		Help:      "Total number of live shipment updates published, labelled by result.",
	},
	[]string{"result"},
)

// LiveQueueDepth tracks the number of updates waiting in each publisher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LiveQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_queue_depth",
		Help:      "Current number of live updates pending in each publisher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - freight_type: "Air", "Road", "Sea", or "unknown" when unset
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by freight type.",
	},
	[]string{"freight_type"},
)

// ShipmentsUpdatedTotal counts admin-side shipment mutations.
var ShipmentsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_updated_total",
		Help:      "Total number of shipment updates applied.",
	},
)

// ShipmentsDeletedTotal counts shipment deletions.
var ShipmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_deleted_total",
		Help:      "Total number of shipments deleted.",
	},
)

// TimelineEventsAddedTotal counts timeline events appended to shipments.
var TimelineEventsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_events_added_total",
		Help:      "Total number of timeline events appended to shipments.",
	},
)

package live

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

type capturePublisher struct {
	mu   sync.Mutex
	seen map[string][]domain.ShipmentPatch
	done chan struct{}
	want int
}

func (p *capturePublisher) PublishUpdate(_ context.Context, trackingID string, patch domain.ShipmentPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen[trackingID] = append(p.seen[trackingID], patch)
	total := 0
	for _, patches := range p.seen {
		total += len(patches)
	}
	if total == p.want {
		close(p.done)
	}
	return nil
}

func progressPtr(v float64) *float64 { return &v }

func TestDispatcher_PreservesPerShipmentOrder(t *testing.T) {
	pub := &capturePublisher{
		seen: make(map[string][]domain.ShipmentPatch),
		done: make(chan struct{}),
		want: 6,
	}
	d := NewDispatcher(4, pub, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 1; i <= 3; i++ {
		if err := d.PublishUpdate(ctx, "LPL-0000AAAA", domain.ShipmentPatch{Progress: progressPtr(float64(i * 10))}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
		if err := d.PublishUpdate(ctx, "LPL-0000BBBB", domain.ShipmentPatch{Progress: progressPtr(float64(i * 20))}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	select {
	case <-pub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publishes")
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	for id, expected := range map[string][]float64{
		"LPL-0000AAAA": {10, 20, 30},
		"LPL-0000BBBB": {20, 40, 60},
	} {
		patches := pub.seen[id]
		if len(patches) != len(expected) {
			t.Fatalf("%s: expected %d patches, got %d", id, len(expected), len(patches))
		}
		for i, want := range expected {
			if patches[i].Progress == nil || *patches[i].Progress != want {
				t.Fatalf("%s: patch %d out of order: %+v", id, i, patches[i])
			}
		}
	}
}

func TestDispatcher_ShardIsStablePerTrackingID(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	first := d.shardIndex("LPL-12345678")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("LPL-12345678"); got != first {
			t.Fatalf("shard index changed: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

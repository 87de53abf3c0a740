package ports

import (
	"context"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// UpdatePublisher pushes sparse shipment patches onto the live update channel
// consumed by active tracking views. Publication is best effort: subscribers
// that reconnect later do not see missed messages.
type UpdatePublisher interface {
	PublishUpdate(ctx context.Context, trackingID string, patch domain.ShipmentPatch) error
}

package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// Error kinds surfaced by the API client. NotFound is user-correctable,
// Network is retryable by resubmission, Auth means the stored credential is
// missing or expired for a privileged call.
var (
	ErrNotFound = errors.New("tracking id not found")
	ErrNetwork  = errors.New("network error")
	ErrAuth     = errors.New("authentication required")
)

const fetchTimeout = 10 * time.Second

// Client is a thin wrapper over the backend HTTP API. It attaches the bearer
// credential from the injected Session when one is present and maps transport
// and status failures onto the sentinel errors above.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
	log     zerolog.Logger
}

func NewClient(baseURL string, session *Session, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: fetchTimeout},
		session: session,
		log:     log,
	}
}

// FetchShipment retrieves the full record for a tracking id via
// GET /shipments/{trackingId}.
func (c *Client) FetchShipment(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	endpoint := fmt.Sprintf("%s/shipments/%s", c.baseURL, url.PathEscape(trackingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := c.session.Credential(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("tracking_id", trackingID).Msg("shipment fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrAuth
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}

	var record domain.ShipmentRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}
	return &record, nil
}

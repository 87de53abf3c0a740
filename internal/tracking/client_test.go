package tracking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

func TestClient_FetchShipmentDecodesRecord(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.ShipmentRecord{
			TrackingID:      "LPL-2001",
			Status:          domain.StatusInTransit,
			Progress:        45,
			CurrentLocation: "12.9,77.6",
			Events: []domain.TimelineEvent{
				{Text: "Picked up", Location: "Bengaluru", Time: "2026-08-01T10:00:00Z"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", NewSession(), zerolog.Nop())
	record, err := c.FetchShipment(context.Background(), "LPL-2001")

	require.NoError(t, err)
	assert.Equal(t, "/shipments/LPL-2001", gotPath)
	assert.Empty(t, gotAuth, "anonymous lookup must not carry a credential")
	assert.Equal(t, "LPL-2001", record.TrackingID)
	assert.Equal(t, float64(45), record.Progress)
	require.Len(t, record.Events, 1)
	assert.Equal(t, "Picked up", record.Events[0].Text)
}

func TestClient_FetchShipmentAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.ShipmentRecord{TrackingID: "LPL-2001"})
	}))
	defer srv.Close()

	session := NewSession()
	session.SetCredential("tok-123")
	c := NewClient(srv.URL, session, zerolog.Nop())

	_, err := c.FetchShipment(context.Background(), "LPL-2001")

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_FetchShipmentClearedCredentialGoesAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.ShipmentRecord{TrackingID: "LPL-2001"})
	}))
	defer srv.Close()

	session := NewSession()
	session.SetCredential("tok-123")
	session.ClearCredential()
	c := NewClient(srv.URL, session, zerolog.Nop())

	_, err := c.FetchShipment(context.Background(), "LPL-2001")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_FetchShipmentErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, ErrAuth},
		{"forbidden", http.StatusForbidden, ErrAuth},
		{"server error", http.StatusInternalServerError, ErrNetwork},
		{"bad gateway", http.StatusBadGateway, ErrNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, NewSession(), zerolog.Nop())
			record, err := c.FetchShipment(context.Background(), "LPL-0000")

			assert.Nil(t, record)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_FetchShipmentUnreachableHostIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, NewSession(), zerolog.Nop())
	_, err := c.FetchShipment(context.Background(), "LPL-0000")

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_FetchShipmentMalformedBodyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession(), zerolog.Nop())
	_, err := c.FetchShipment(context.Background(), "LPL-0000")

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_FetchShipmentEscapesTrackingID(t *testing.T) {
	var gotRawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession(), zerolog.Nop())
	_, err := c.FetchShipment(context.Background(), "LPL/..%2001")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "/shipments/LPL%2F..%252001", gotRawPath)
}

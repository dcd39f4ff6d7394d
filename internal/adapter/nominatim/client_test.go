package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookingnest-payments/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.NominatimConfig{
		BaseURL:   srv.URL,
		UserAgent: "bookingnest-payments/test",
		Timeout:   2 * time.Second,
	}, srv.Client(), zerolog.Nop())
}

func TestReverse_ForwardsCoordinatesVerbatim(t *testing.T) {
	payload := `{"place_id":12345,"display_name":"Manila, Philippines"}`

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "14.5995", r.URL.Query().Get("lat"))
		assert.Equal(t, "120.9842", r.URL.Query().Get("lon"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "bookingnest-payments/test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(payload))
	}))

	raw, err := c.Reverse(context.Background(), "14.5995", "120.9842")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw))
}

func TestReverse_UpstreamError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Reverse(context.Background(), "1", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestReverse_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewClient(config.NominatimConfig{BaseURL: srv.URL, Timeout: time.Second}, srv.Client(), zerolog.Nop())
	srv.Close()

	_, err := c.Reverse(context.Background(), "1", "2")
	require.Error(t, err)
}

package geoloc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/stretchr/testify/require"
)

func TestUnsupported(t *testing.T) {
	_, err := Unsupported{}.Resolve(context.Background())
	require.ErrorIs(t, err, ErrUnsupportedCapability)
}

func TestStatic(t *testing.T) {
	coords := models.Coordinates{Latitude: 45.76, Longitude: 4.84}
	got, err := Static{Coords: coords}.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, coords, got)
}

func TestIPAPIResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","lat":45.76,"lon":4.84}`))
	}))
	defer srv.Close()

	resolver := NewIPAPI()
	resolver.BaseURL = srv.URL

	coords, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.Coordinates{Latitude: 45.76, Longitude: 4.84}, coords)
}

func TestIPAPIResolveFailures(t *testing.T) {
	t.Run("provider refusal", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
		}))
		defer srv.Close()

		resolver := NewIPAPI()
		resolver.BaseURL = srv.URL

		_, err := resolver.Resolve(context.Background())
		var unavailable *LocationUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		resolver := NewIPAPI()
		resolver.BaseURL = srv.URL

		_, err := resolver.Resolve(context.Background())
		var unavailable *LocationUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})

	t.Run("provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "throttled", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		resolver := NewIPAPI()
		resolver.BaseURL = srv.URL

		_, err := resolver.Resolve(context.Background())
		var unavailable *LocationUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})
}

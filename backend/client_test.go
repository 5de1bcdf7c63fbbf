package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/stretchr/testify/require"
)

func TestLoadPlaces(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody models.Coordinates

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"places":[
			{"title":"Pizza Napoli","type":"Pizza","address":"12 rue des Halles","info":"Ouvert",
			 "distance_from_user":1.2,"images_cover_link":"http://img/1.jpg",
			 "current_day_hours":"11:00 - 23:00","service_options":["Sur place","À emporter"],
			 "google_maps_link":"http://maps/1"},
			{"title":"Bar des Amis","type":"Bar","address":"3 quai Sud","info":"Fermé",
			 "images_cover_link":["http://img/2.jpg","http://img/3.jpg"]}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	coords := models.Coordinates{Latitude: 45.76, Longitude: 4.84}

	places, err := client.LoadPlaces(context.Background(), coords, models.CategoryRestaurants)
	require.NoError(t, err)
	require.Equal(t, "/api/users/postUserPositionForRestaurants", gotPath)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, coords, gotBody)

	require.Len(t, places, 2)
	require.Equal(t, "Pizza Napoli", places[0].Title)
	require.True(t, places[0].DistanceFromUser.Valid)
	require.Equal(t, 1.2, places[0].DistanceFromUser.Float64)
	require.Equal(t, models.ImageLinks{"http://img/1.jpg"}, places[0].ImagesCoverLink)
	require.Equal(t, []string{"Sur place", "À emporter"}, places[0].ServiceOptions)
	require.False(t, places[1].DistanceFromUser.Valid)
	require.Equal(t, models.ImageLinks{"http://img/2.jpg", "http://img/3.jpg"}, places[1].ImagesCoverLink)
}

func TestLoadPlacesBarsEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"places":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	places, err := client.LoadPlaces(context.Background(), models.Coordinates{}, models.CategoryBars)
	require.NoError(t, err)
	require.Empty(t, places)
	require.Equal(t, "/api/users/postUserPositionForBars", gotPath)
}

func TestLoadPlacesTransportError(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.LoadPlaces(context.Background(), models.Coordinates{}, models.CategoryRestaurants)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		require.Equal(t, http.StatusInternalServerError, transportErr.Status)
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.LoadPlaces(context.Background(), models.Coordinates{}, models.CategoryRestaurants)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		require.Zero(t, transportErr.Status)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"places":`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.LoadPlaces(context.Background(), models.Coordinates{}, models.CategoryRestaurants)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
	})
}

func TestLoadPlacesUnknownCategory(t *testing.T) {
	client := NewClient("http://localhost:0", 0)
	_, err := client.LoadPlaces(context.Background(), models.Coordinates{}, models.Category("cafes"))
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Any answer counts as reachable, even a 404.
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	require.NoError(t, client.Ping(context.Background()))

	srv.Close()
	require.Error(t, client.Ping(context.Background()))
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	restaurantsPath = "/api/users/postUserPositionForRestaurants"
	barsPath        = "/api/users/postUserPositionForBars"
)

// TransportError covers network failures and non-2xx statuses from the
// listing backend. Callers treat it as "no places available".
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend transport failure (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("backend transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to the listing backend. A zero timeout means none, matching
// the source behavior of an unbounded request.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// LoadPlaces posts the user position to the endpoint for the given category
// and returns the places list. Identical concurrent loads are collapsed into
// a single request.
func (c *Client) LoadPlaces(ctx context.Context, coords models.Coordinates, category models.Category) ([]models.Place, error) {
	path, err := endpointFor(category)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%f:%f", category, coords.Latitude, coords.Longitude)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.fetch(ctx, path, coords)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Place), nil
}

func (c *Client) fetch(ctx context.Context, path string, coords models.Coordinates) ([]models.Place, error) {
	reqID := uuid.New().String()
	logrus.Infof("loadPlaces %s: POST %s for (%f, %f)", reqID, path, coords.Latitude, coords.Longitude)

	payload, err := json.Marshal(coords)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode position payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.Errorf("loadPlaces %s: request failed: %+v", reqID, err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// The error body is not parsed for detail, every failure is the same
	// "no places available" to the caller.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.Errorf("loadPlaces %s: backend returned status %s", reqID, resp.Status)
		return nil, &TransportError{Status: resp.StatusCode, Err: errors.Errorf("unexpected status %s", resp.Status)}
	}

	var body models.PlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logrus.Errorf("loadPlaces %s: failed to decode response: %+v", reqID, err)
		return nil, &TransportError{Err: err}
	}

	logrus.Infof("loadPlaces %s: received %d places", reqID, len(body.Places))
	return body.Places, nil
}

// Ping checks transport-level reachability of the backend; any HTTP answer
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	return resp.Body.Close()
}

func endpointFor(category models.Category) (string, error) {
	switch category {
	case models.CategoryRestaurants:
		return restaurantsPath, nil
	case models.CategoryBars:
		return barsPath, nil
	default:
		return "", errors.Errorf("unknown category %q", category)
	}
}

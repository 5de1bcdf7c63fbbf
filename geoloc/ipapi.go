package geoloc

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const ipAPIDefaultURL = "http://ip-api.com/json"

// IPAPI resolves the caller's position from its public IP via the ip-api.com
// JSON endpoint.
type IPAPI struct {
	BaseURL string
	Client  *http.Client
}

func NewIPAPI() *IPAPI {
	return &IPAPI{
		BaseURL: ipAPIDefaultURL,
		Client:  &http.Client{},
	}
}

func (p *IPAPI) Resolve(ctx context.Context) (models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL, nil)
	if err != nil {
		return models.Coordinates{}, &LocationUnavailableError{Reason: err}
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return models.Coordinates{}, &LocationUnavailableError{Reason: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Coordinates{}, &LocationUnavailableError{
			Reason: errors.Errorf("geolocation provider returned status %s", resp.Status),
		}
	}

	body := struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Coordinates{}, &LocationUnavailableError{Reason: err}
	}

	if body.Status != "success" {
		return models.Coordinates{}, &LocationUnavailableError{
			Reason: errors.Errorf("geolocation provider refused lookup: %s", body.Message),
		}
	}

	coords := models.Coordinates{Latitude: body.Lat, Longitude: body.Lon}
	logrus.Infof("resolved position (%f, %f)", coords.Latitude, coords.Longitude)
	return coords, nil
}

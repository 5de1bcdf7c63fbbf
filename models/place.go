package models

import (
	"encoding/json"

	"github.com/volatiletech/null"
)

type Category string

const (
	CategoryRestaurants Category = "restaurants"
	CategoryBars        Category = "bars"
)

// Valid reports whether the category is one of the two known endpoints.
func (c Category) Valid() bool {
	return c == CategoryRestaurants || c == CategoryBars
}

// Status values the backend puts in a place's info field. The set is
// open-ended; these three are the ones the pipeline reacts to.
const (
	InfoOpen        = "Ouvert"
	InfoClosed      = "Fermé"
	InfoClosedToday = "Fermé aujourd'hui"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ImageLinks accepts either a single link or an ordered list of links,
// the two shapes the backend uses for images_cover_link.
type ImageLinks []string

func (l *ImageLinks) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
			return nil
		}
		*l = ImageLinks{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

type Place struct {
	Title            string       `json:"title"`
	Type             string       `json:"type"`
	Address          string       `json:"address"`
	Info             string       `json:"info"`
	DistanceFromUser null.Float64 `json:"distance_from_user"`
	ImagesCoverLink  ImageLinks   `json:"images_cover_link"`
	CurrentDayHours  null.String  `json:"current_day_hours"`
	ServiceOptions   []string     `json:"service_options"`
	GoogleMapsLink   null.String  `json:"google_maps_link"`
}

// PlacesResponse is the success body of both position endpoints.
type PlacesResponse struct {
	Places []Place `json:"places"`
}

type Response struct {
	Success bool `json:"success"`
}

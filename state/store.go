package state

import (
	"context"
	"sync"

	"github.com/MaxouZouzouAlou/RestoNowFront/filter"
	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LoadFunc fetches the places list for a position and category.
type LoadFunc func(ctx context.Context, coords models.Coordinates, category models.Category) ([]models.Place, error)

// PlaceView is a filtered place together with its raw-list position and
// favorite flag, the shape the view layer binds to.
type PlaceView struct {
	Index    int  `json:"index"`
	Favorite bool `json:"favorite"`
	models.Place
}

// Snapshot is a consistent read of the whole UI state.
type Snapshot struct {
	Loading     bool                `json:"loading"`
	Category    models.Category     `json:"category"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Filters     models.FilterParams `json:"filters"`
	TypeOptions []string            `json:"typeOptions"`
	Total       int                 `json:"total"`
	Places      []PlaceView         `json:"places"`
}

// Store owns every piece of mutable UI state: position, category, the raw
// places list, filter params, favorites and the loading flag. All state
// dies with the process; nothing is persisted.
type Store struct {
	mu   sync.Mutex
	load LoadFunc

	coords    models.Coordinates
	hasCoords bool
	category  models.Category

	places  []models.Place
	gen     uint64 // generation of the applied places list
	loadGen uint64 // generation of the newest issued load
	cancel  context.CancelFunc

	params    models.FilterParams
	favorites map[int]struct{}
	loading   bool

	memo filter.Memo
}

// New returns a store in its startup state: loading, restaurants category,
// default filters, no position yet.
func New(load LoadFunc) *Store {
	return &Store{
		load:     load,
		category: models.CategoryRestaurants,
		params: models.FilterParams{
			SelectedType: models.TypeAll,
			StatusFilter: models.StatusAll,
			MaxDistance:  filter.DefaultMaxDistance,
		},
		favorites: make(map[int]struct{}),
		loading:   true,
	}
}

// SetCoordinates records the resolved position and triggers a load. The
// position is resolved once per session, so in practice this fires the
// initial fetch.
func (s *Store) SetCoordinates(coords models.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coords = coords
	s.hasCoords = true
	s.startLoadLocked()
}

// SetCategory switches between restaurants and bars. A changed category with
// a known position triggers exactly one new fetch.
func (s *Store) SetCategory(category models.Category) error {
	if !category.Valid() {
		return errors.Errorf("unknown category %q", category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if category == s.category {
		return nil
	}
	s.category = category
	if s.hasCoords {
		s.startLoadLocked()
	}
	return nil
}

// StopLoading clears the loading flag without touching the places list, the
// terminal state after a failed location resolution.
func (s *Store) StopLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// startLoadLocked issues a generation-stamped load and cancels whatever load
// it supersedes. Only the newest generation's result is ever applied.
func (s *Store) startLoadLocked() {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.loadGen++
	gen := s.loadGen
	coords := s.coords
	category := s.category
	s.loading = true

	go func() {
		places, err := s.load(ctx, coords, category)
		if err != nil {
			// Failures collapse to an empty list; they never propagate.
			logrus.Errorf("failed to load %s: %+v", category, err)
			places = nil
		}
		s.applyPlaces(gen, places)
	}()
}

func (s *Store) applyPlaces(gen uint64, places []models.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		logrus.Infof("dropping superseded places response (generation %d < %d)", gen, s.loadGen)
		return
	}

	if places == nil {
		places = []models.Place{}
	}
	s.places = places
	s.gen++
	// Positions are transient keys, so a new list orphans old favorites.
	s.favorites = make(map[int]struct{})
	s.memo.Invalidate()
	s.loading = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// UpdateFilters applies a partial filter update. The distance is quantized
// to its slider step, then clamped to the hard bound.
func (s *Store) UpdateFilters(u models.FilterUpdate) error {
	if u.StatusFilter.Valid && !models.StatusFilter(u.StatusFilter.String).Valid() {
		return errors.Errorf("unknown status filter %q", u.StatusFilter.String)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u.SearchTerm.Valid {
		s.params.SearchTerm = u.SearchTerm.String
	}
	if u.SelectedType.Valid {
		s.params.SelectedType = u.SelectedType.String
	}
	if u.StatusFilter.Valid {
		s.params.StatusFilter = models.StatusFilter(u.StatusFilter.String)
	}
	if u.MaxDistance.Valid {
		s.params.MaxDistance = filter.ClampDistance(filter.Quantize(u.MaxDistance.Float64))
	}
	return nil
}

// ToggleFavorite stars or unstars the card at a raw-list position.
func (s *Store) ToggleFavorite(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.places) {
		return false, errors.Errorf("favorite index %d out of range", index)
	}
	if _, ok := s.favorites[index]; ok {
		delete(s.favorites, index)
		return false, nil
	}
	s.favorites[index] = struct{}{}
	return true, nil
}

// Snapshot returns a consistent view of the state plus the derived filtered
// list. The derivation is memoized on its exact inputs.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered, indices := s.memo.Eval(s.gen, s.places, s.params)
	views := make([]PlaceView, len(filtered))
	for i := range filtered {
		_, fav := s.favorites[indices[i]]
		views[i] = PlaceView{Index: indices[i], Favorite: fav, Place: filtered[i]}
	}

	snap := Snapshot{
		Loading:     s.loading,
		Category:    s.category,
		Filters:     s.params,
		TypeOptions: filter.TypeOptions(s.places),
		Total:       len(s.places),
		Places:      views,
	}
	if s.hasCoords {
		coords := s.coords
		snap.Coordinates = &coords
	}
	return snap
}

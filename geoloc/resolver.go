package geoloc

import (
	"context"
	"fmt"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/pkg/errors"
)

// ErrUnsupportedCapability is returned when no location provider is
// available at all, the analog of a platform without location services.
var ErrUnsupportedCapability = errors.New("location services are not supported")

// LocationUnavailableError means a provider exists but could not produce a
// position (denied, unreachable, or provider-side failure).
type LocationUnavailableError struct {
	Reason error
}

func (e *LocationUnavailableError) Error() string {
	return fmt.Sprintf("location unavailable: %v", e.Reason)
}

func (e *LocationUnavailableError) Unwrap() error {
	return e.Reason
}

// Resolver produces the user's current position. It is invoked exactly once
// per process, at startup, with no retry on failure.
type Resolver interface {
	Resolve(ctx context.Context) (models.Coordinates, error)
}

// Unsupported is the resolver wired when no provider is configured.
type Unsupported struct{}

func (Unsupported) Resolve(_ context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, ErrUnsupportedCapability
}

// Static always resolves to a fixed position, useful for development and
// for deployments that pin the storefront location.
type Static struct {
	Coords models.Coordinates
}

func (s Static) Resolve(_ context.Context) (models.Coordinates, error) {
	return s.Coords, nil
}

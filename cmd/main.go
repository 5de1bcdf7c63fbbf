package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/MaxouZouzouAlou/RestoNowFront/backend"
	"github.com/MaxouZouzouAlou/RestoNowFront/cronJobs"
	"github.com/MaxouZouzouAlou/RestoNowFront/geoloc"
	"github.com/MaxouZouzouAlou/RestoNowFront/handlers"
	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/MaxouZouzouAlou/RestoNowFront/server"
	"github.com/MaxouZouzouAlou/RestoNowFront/state"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

const (
	defaultBackendURL = "http://localhost:3000"
	defaultPort       = "8080"
)

func InitiateCronJobs(client *backend.Client) error {
	logrus.Infof("intiating cronJobs jobs")
	probeBackend := cron.New()
	err := probeBackend.AddFunc("@every 1m", func() {
		cronJobs.ProbeBackend(client)
	})
	if err != nil {
		logrus.Errorf("cronJobs job intiation failed %v", err)
		return err
	}
	probeBackend.Start()

	logrus.Infof("cronJobs job initiation successfull ")
	return nil
}

func resolverFromEnv() geoloc.Resolver {
	switch os.Getenv("GEO_PROVIDER") {
	case "ipapi":
		return geoloc.NewIPAPI()
	case "static":
		coords, err := staticCoordsFromEnv()
		if err != nil {
			logrus.Errorf("invalid static coordinates: %+v", err)
			return geoloc.Unsupported{}
		}
		return geoloc.Static{Coords: coords}
	default:
		return geoloc.Unsupported{}
	}
}

func staticCoordsFromEnv() (models.Coordinates, error) {
	lat, err := strconv.ParseFloat(os.Getenv("STATIC_LAT"), 64)
	if err != nil {
		return models.Coordinates{}, errors.Wrap(err, "failed to parse STATIC_LAT")
	}
	lon, err := strconv.ParseFloat(os.Getenv("STATIC_LON"), 64)
	if err != nil {
		return models.Coordinates{}, errors.Wrap(err, "failed to parse STATIC_LON")
	}
	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

func backendTimeout() time.Duration {
	raw := os.Getenv("BACKEND_TIMEOUT")
	if raw == "" {
		// No timeout, a hung backend holds the loading state.
		return 0
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Errorf("invalid BACKEND_TIMEOUT %q: %v", raw, err)
		return 0
	}
	return timeout
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded: %v", err)
	}

	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBackendURL
	}

	client := backend.NewClient(baseURL, backendTimeout())
	store := state.New(client.LoadPlaces)

	// The position is resolved once per session; any failure just stops the
	// loading state and leaves the list empty.
	resolver := resolverFromEnv()
	go func() {
		coords, err := resolver.Resolve(context.Background())
		if err != nil {
			logrus.Errorf("location resolution failed: %+v", err)
			store.StopLoading()
			return
		}
		store.SetCoordinates(coords)
	}()

	if err := InitiateCronJobs(client); err != nil {
		logrus.Error("error form cronJobs job", err)
	}

	srv := server.SetupRoutes(handlers.New(store))

	port := os.Getenv("SERVER_HOST_PORT")
	if port == "" {
		port = defaultPort
	}
	logrus.Print("Server started at ", port)
	if err := srv.Run(":" + port); err != nil {
		logrus.Panicf("Failed to run server with error: %+v", err)
	}
}

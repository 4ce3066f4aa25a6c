package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/hmousaa/athan-agent/internal/hijri"
	"github.com/hmousaa/athan-agent/internal/notify"
	"github.com/hmousaa/athan-agent/internal/prefs"
	"github.com/hmousaa/athan-agent/internal/schedule"
	"github.com/hmousaa/athan-agent/internal/service_registry"
	"github.com/hmousaa/athan-agent/internal/services"
	"github.com/hmousaa/athan-agent/internal/utils"
	"github.com/hmousaa/athan-agent/pkg/aladhan"
	"github.com/hmousaa/athan-agent/pkg/file"
	loc "github.com/hmousaa/athan-agent/pkg/location"
	"github.com/hmousaa/athan-agent/pkg/mqtt"
	"github.com/rs/zerolog"
)

func main() {
	// Set up structured logging with JSON output
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	fileClient := file.NewFileService()

	// Load configuration from file
	config, err := utils.LoadConfig("configs/config.yaml", fileClient)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Generate a unique MQTT client ID by appending a UUID
	clientID := config.MQTT.ClientID + "-" + uuid.New().String()
	logger.Info().Str("client_id", clientID).Msg("Using MQTT client ID")

	// Initialize the shared MQTT connection used as the notification surface
	mqttClient := mqtt.NewClient(fileClient, logger)
	if err := mqttClient.Connect(config.MQTT.Broker, clientID, config.MQTT.CACertificate); err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MQTT broker")
	}

	clk := clock.New()

	// Build the location resolution chain: GPS (when configured), network
	// geolocation, IP lookup, then the static fallback.
	var steps []loc.Step
	if config.Location.SensorBased {
		steps = append(steps, loc.Step{
			Provider: loc.NewGPSProvider(config.Location.GPSDevicePort, config.Location.GPSBaudRate),
			Timeout:  config.Location.DeviceWait,
		})
	}

	var searcher loc.Searcher
	if config.Location.MapsAPIKey != "" {
		geoProvider, err := loc.NewGeolocationProvider(config.Location.MapsAPIKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create geolocation provider")
		}
		steps = append(steps, loc.Step{Provider: geoProvider, Timeout: config.Location.IPAPITimeout})

		searcher, err = loc.NewGeocodeSearcher(config.Location.MapsAPIKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create geocode searcher")
		}
	}

	steps = append(steps, loc.Step{
		Provider: loc.NewIPAPIProvider(config.Location.IPAPITimeout),
		Timeout:  config.Location.IPAPITimeout,
	})

	resolver := loc.NewResolver(steps, loc.Location{
		Latitude:  config.Location.Fallback.Latitude,
		Longitude: config.Location.Fallback.Longitude,
		City:      config.Location.Fallback.City,
		Country:   config.Location.Fallback.Country,
	}, logger)

	// Timing-service client and the cascading schedule fetcher
	adhanClient := aladhan.NewClient(config.Schedule.Timeout)
	fetcher := schedule.NewFetcher(adhanClient, config.Schedule.Method, config.Schedule.School,
		config.Schedule.FallbackCity, config.Schedule.FallbackCountry, logger)

	hijriResolver := hijri.NewResolver(adhanClient, logger)

	// Notification channels and the consent gate. Permission is requested
	// once at startup; denial is terminal for the session and only disables
	// the platform channel.
	gate := notify.NewPlatformGate(logger)
	gate.RequestPermission()

	notifier := notify.NewDesktopNotifier(config.Notify.Icon, logger)
	player := notify.NewAthanPlayer(config.Notify.AthanPlayer, config.Notify.AthanArgs,
		config.Notify.AthanSource, logger)

	prefStore := prefs.NewStore(config.Preferences.File, fileClient, logger)
	session := services.NewSession()

	// Register and start the services
	registry := service_registry.NewServiceRegistry(logger)
	registry.Register("location", services.NewLocationService(
		config.Location.Topic,
		config.Location.OverrideTopic,
		config.Location.QOS,
		config.Location.SearchTimeout,
		resolver,
		searcher,
		fetcher,
		session,
		mqttClient,
		prefStore,
		clk,
		logger,
	))
	registry.Register("hijri", services.NewHijriService(
		config.Hijri.Topic,
		config.Hijri.QOS,
		config.Hijri.Locale,
		hijriResolver,
		mqttClient,
		clk,
		logger,
	))
	registry.Register("tracker", services.NewTrackerService(
		config.Tracker.StateTopic,
		config.Tracker.BannerTopic,
		config.Tracker.QOS,
		config.Tracker.Interval,
		config.Tracker.Locale,
		session,
		mqttClient,
		gate,
		notifier,
		player,
		clk,
		logger,
	))

	if err := registry.StartServices(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start services")
	}
	logger.Info().Msg("All services started successfully")

	// Handle graceful shutdown
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	logger.Info().Msg("Shutting down gracefully...")
	if err := registry.StopServices(); err != nil {
		logger.Error().Err(err).Msg("Errors while stopping services")
	}
	player.Stop()
	mqttClient.Disconnect(250)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-card/api"
	"weather-card/config"
	"weather-card/datasource"
	"weather-card/logger"
	"weather-card/lookup"
)

func main() {
	// Parse command line arguments
	configFile := flag.String("config", "", "Path to configuration file (.toml, .yaml or .json)")
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if !*enableRateLimiting {
		cfg.RateLimit.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create the provider
	var provider datasource.WeatherProvider = datasource.NewOpenWeatherMapProvider(
		cfg.Weather.APIURL, cfg.Weather.APIKey, cfg.RequestTimeout())
	if cfg.RateLimit.Enabled {
		provider = datasource.NewRateLimitedProvider(provider, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		log.Info("Applied rate limiting to weather provider",
			logger.Float64("rps", cfg.RateLimit.RequestsPerSecond),
			logger.Int("burst", cfg.RateLimit.Burst))
	}

	service := lookup.NewService(provider, lookup.Messages{
		EmptyCity: cfg.Messages.EmptyCity,
		NotFound:  cfg.Messages.NotFound,
		Network:   cfg.Messages.Network,
	}, log)

	server := api.NewServer(service, cfg.Addr(), cfg.Server.StaticDir, log)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case sig := <-shutdownChan:
		log.Info("Shutting down", logger.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			log.Error("Server stopped", logger.Error(err))
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Warn("Error during server shutdown", logger.Error(err))
	}

	log.Info("Shutdown complete")
}

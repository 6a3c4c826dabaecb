package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"weather-card/config"
	"weather-card/datasource"
	"weather-card/logger"
	"weather-card/lookup"
	"weather-card/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to configuration file (.toml, .yaml or .json)")
	city := fs.String("city", "", "City to look up (defaults to the remaining arguments)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *city == "" {
		*city = strings.Join(fs.Args(), " ")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	// An empty city is rejected before the configuration has to be usable
	if strings.TrimSpace(*city) != "" {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			return 1
		}
	}

	// Keep stdout for the card; diagnostics only above info
	log, err := logger.New(logger.Config{Level: "warn", Format: cfg.Logging.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	provider := datasource.NewOpenWeatherMapProvider(cfg.Weather.APIURL, cfg.Weather.APIKey, cfg.RequestTimeout())
	service := lookup.NewService(provider, lookup.Messages{
		EmptyCity: cfg.Messages.EmptyCity,
		NotFound:  cfg.Messages.NotFound,
		Network:   cfg.Messages.Network,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = service.FetchWeather(ctx, *city, render.NewTerminal(os.Stdout, os.Stderr))
	switch {
	case err == nil:
		return 0
	case errors.Is(err, lookup.ErrEmptyCity):
		return 2
	default:
		return 1
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"beamband/internal/adapter/repo"
	"beamband/internal/domain"
	"beamband/internal/http/handlers"
	"beamband/internal/http/httpapi"
	"beamband/internal/infra"
	"beamband/internal/infra/geoip"
	"beamband/internal/providers/stripe"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Catalog repositories: Postgres when configured, the seeded in-memory
	// catalog otherwise.
	var (
		cities     domain.CityRepository
		events     domain.EventRepository
		milestones domain.MilestoneRepository
		donations  domain.DonationRepository
	)
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()

		cities = repo.NewCityRepository(dbpool)
		events = repo.NewEventRepository(dbpool)
		milestones = repo.NewMilestoneRepository(dbpool)
		donations = repo.NewDonationRepository(dbpool)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, serving seeded in-memory catalog")
		mem := repo.NewMemory()
		cities, events, milestones, donations = mem, mem, mem, mem
	}

	payments, err := stripe.NewClient(stripe.Options{
		APIKey:  cfg.StripeSecretKey,
		BaseURL: cfg.StripeAPIBaseURL,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init payment client")
	}

	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	if geo == nil {
		logger.Info().Msg("GEOIP_DB_PATH not set, chapter suggestion disabled")
	}

	app := &handlers.App{
		Cities:           cities,
		Events:           events,
		Milestones:       milestones,
		Donations:        donations,
		Payments:         payments,
		Geo:              geo,
		Logger:           logger,
		SiteBaseURL:      cfg.SiteBaseURL,
		LeaderboardLimit: cfg.LeaderboardLimit,
	}

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

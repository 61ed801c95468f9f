package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	principaldirectory "ideabazaar/contexts/identity-access/principal-directory"
	directorypostgres "ideabazaar/contexts/identity-access/principal-directory/adapters/postgres"
	directoryerrors "ideabazaar/contexts/identity-access/principal-directory/domain/errors"
	listingexchange "ideabazaar/contexts/marketplace-core/listing-exchange"
	exchangepostgres "ideabazaar/contexts/marketplace-core/listing-exchange/adapters/postgres"
	workerapp "ideabazaar/contexts/marketplace-core/listing-exchange/application/workers"
	exchangeerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
	"ideabazaar/internal/platform/config"
	"ideabazaar/internal/platform/db"
	"ideabazaar/internal/platform/httpserver"
	"ideabazaar/internal/platform/messaging"
	"ideabazaar/internal/platform/seed"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  workerapp.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := exchangepostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}
	if err := directorypostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}

	directoryRepo := directorypostgres.NewRepository(pg.DB, logger)
	directoryModule := principaldirectory.NewModule(principaldirectory.Dependencies{
		Repo:        directoryRepo,
		Clock:       exchangepostgres.SystemClock{},
		IDGenerator: exchangepostgres.UUIDGenerator{},
		Logger:      logger,
	})

	exchangeRepo := exchangepostgres.NewRepository(pg.DB, logger)
	exchangeModule := listingexchange.NewModule(listingexchange.Dependencies{
		Listings:    exchangeRepo,
		Ledger:      exchangeRepo,
		Authorizer:  directoryAuthorizer(directoryModule),
		Clock:       exchangepostgres.SystemClock{},
		IDGenerator: exchangepostgres.UUIDGenerator{},
		Logger:      logger,
	})

	if cfg.SeedCatalog {
		seedCatalog(context.Background(), exchangeRepo, directoryRepo, logger)
	}

	server := httpserver.New(exchangeModule, directoryModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := exchangepostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	repo := exchangepostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: kafka,
			Clock:     exchangepostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		},
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

// directoryAuthorizer bridges the two contexts without a source dependency:
// directory denials surface in exchange terms.
func directoryAuthorizer(directory principaldirectory.Module) ports.CreatorAuthorizer {
	return ports.CreatorAuthorizerFunc(func(ctx context.Context, creatorID string) error {
		err := directory.Service.AuthorizeListingCreation(ctx, creatorID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, directoryerrors.ErrPrincipalNotFound),
			errors.Is(err, directoryerrors.ErrInvalidPrincipal),
			errors.Is(err, directoryerrors.ErrPrincipalInactive),
			errors.Is(err, directoryerrors.ErrCreationNotAllowed):
			return exchangeerrors.ErrCreatorNotAuthorized
		default:
			return err
		}
	})
}

// seedCatalog loads the development fixtures; duplicates from prior runs are
// skipped.
func seedCatalog(
	ctx context.Context,
	exchangeRepo *exchangepostgres.Repository,
	directoryRepo *directorypostgres.Repository,
	logger *slog.Logger,
) {
	for _, principal := range seed.SamplePrincipals() {
		if err := directoryRepo.CreatePrincipal(ctx, principal); err != nil &&
			!errors.Is(err, directoryerrors.ErrDuplicatePrincipal) {
			logger.Warn("seed principal failed",
				"event", "seed_principal_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"principal_id", principal.PrincipalID,
				"error", err.Error(),
			)
		}
	}
	for _, listing := range seed.SampleListings() {
		if err := exchangeRepo.CreateListing(ctx, listing); err != nil &&
			!errors.Is(err, exchangeerrors.ErrDuplicateListing) {
			logger.Warn("seed listing failed",
				"event", "seed_listing_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"listing_id", listing.ListingID,
				"error", err.Error(),
			)
		}
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

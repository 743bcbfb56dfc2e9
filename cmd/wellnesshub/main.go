package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	adapthttp "wellnesshub/internal/adapter/http"
	"wellnesshub/internal/adapter/postgres"
	"wellnesshub/internal/adapter/sqlite"
	"wellnesshub/internal/app"
	"wellnesshub/internal/bus"
	"wellnesshub/internal/config"
	"wellnesshub/internal/domain"
	"wellnesshub/internal/remote"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	store, closer, err := openStore(cfg)
	if err != nil {
		log.Fatalf("snapshot store: %v", err)
	}
	defer func() { _ = closer.Close() }()

	var rc *remote.Client
	if cfg.BackendURL != "" {
		rc = remote.New(cfg.BackendURL, app.IdentityTokenSource(store))
		log.Printf("backend enabled at %s", cfg.BackendURL)
	}

	b := bus.New()
	b.Subscribe(bus.TopicBMIUpdated, func(n bus.Notification) {
		log.Printf("bmi updated for %s", n.UserKey)
	})
	b.Subscribe(bus.TopicJournalUpdated, func(n bus.Notification) {
		log.Printf("journal updated for %s", n.UserKey)
	})

	authSvc := app.NewAuthService(store, rc, cfg.TokenSecret)
	wellnessSvc := app.NewWellnessService(store, b)
	newsSvc := app.NewNewsService(ctx, store)
	trainerSvc := app.NewTrainerService(ctx, store)
	tipsSvc := app.NewTipsService(ctx, store)
	communitySvc := app.NewCommunityService(ctx, store)
	issueSvc := app.NewIssueService(ctx, store, rc)
	plannerSvc := app.NewPlannerService(ctx, store)

	h := adapthttp.New(
		authSvc, wellnessSvc, newsSvc, trainerSvc,
		tipsSvc, communitySvc, issueSvc, plannerSvc,
	).Handler()

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (domain.SnapshotStore, io.Closer, error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Print("snapshot store: postgres")
		return db, db, nil
	}
	db, err := sqlite.Open(cfg.SnapshotDB)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("snapshot store: sqlite at %s", cfg.SnapshotDB)
	return db, db, nil
}

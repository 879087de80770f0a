package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/mishasvintus/document_review_service/internal/config"
	"github.com/mishasvintus/document_review_service/internal/handler"
	"github.com/mishasvintus/document_review_service/internal/notify"
	"github.com/mishasvintus/document_review_service/internal/repository"
	"github.com/mishasvintus/document_review_service/internal/repository/postgres"
	"github.com/mishasvintus/document_review_service/internal/router"
	"github.com/mishasvintus/document_review_service/internal/scheduler"
	"github.com/mishasvintus/document_review_service/internal/service"
	"github.com/mishasvintus/document_review_service/internal/store"
	"github.com/mishasvintus/document_review_service/internal/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := log.Default()

	st, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	sink, err := newSink(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to set up notifications: %v", err)
	}
	dispatcher := notify.NewDispatcher(sink, logger, 0)
	defer dispatcher.Close()

	deps := service.Deps{
		Store:    st,
		Notifier: dispatcher,
		Policy:   cfg.Policy.Service(),
		Logger:   logger,
	}

	assignmentService := service.NewAssignmentService(deps)
	responseService := service.NewResponseService(deps)
	submissionService := service.NewSubmissionService(deps)
	approvalService := service.NewApprovalService(deps)
	expirationService := service.NewExpirationService(deps)
	queryService := service.NewQueryService(deps)

	sweeps, err := scheduler.New(scheduler.Config{
		PendingSpec:  cfg.Policy.ExpirePendingCron,
		AcceptedSpec: cfg.Policy.ExpireAcceptedCron,
		Location:     cfg.Policy.Location(),
	}, expirationService, logger)
	if err != nil {
		log.Fatalf("Failed to schedule expiration sweeps: %v", err)
	}
	sweeps.Start()
	defer sweeps.Stop()

	requestHandler := handler.NewReviewRequestHandler(assignmentService, responseService, queryService)
	resultHandler := handler.NewReviewResultHandler(submissionService, approvalService, queryService)
	adminHandler := handler.NewAdminHandler(expirationService)

	r := router.SetupRoutes(requestHandler, resultHandler, adminHandler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on %s (store=%s)", addr, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func openStore(cfg *config.Config) (store.Store, func(), error) {
	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, nil, err
	}
	users, err := seed.DomainUsers()
	if err != nil {
		return nil, nil, err
	}
	docs, err := seed.DomainDocuments()
	if err != nil {
		return nil, nil, err
	}

	if cfg.StoreBackend == config.BackendMemory {
		m := memory.New()
		for _, u := range users {
			m.PutUser(u)
		}
		for _, d := range docs {
			m.PutDocument(d)
		}
		return m, func() {}, nil
	}

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repository.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	pg := postgres.NewStore(db)
	if err := pg.Seed(ctx, users, docs); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return pg, closeDB(db), nil
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}

func newSink(cfg *config.Config, logger *log.Logger) (notify.Sink, error) {
	if cfg.SNSTopicArn == "" {
		return notify.LogSink{Logger: logger}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return notify.NewSNSSink(sns.NewFromConfig(awsCfg), cfg.SNSTopicArn), nil
}

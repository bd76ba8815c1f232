// Command api runs the BelajarHosting REST backend.
//
// @title BelajarHosting API
// @version 1.0
// @description Hosting reseller and education platform backend
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/belajarhosting/platform/internal/api/handlers"
	"github.com/belajarhosting/platform/internal/api/router"
	"github.com/belajarhosting/platform/internal/config"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/validator"
	"github.com/belajarhosting/platform/internal/repository/postgres"
	"github.com/belajarhosting/platform/internal/services"
	"github.com/belajarhosting/platform/internal/worker"
	"github.com/belajarhosting/platform/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	vpsRepo := postgres.NewVPSRepository(db)
	hostingRepo := postgres.NewHostingRepository(db)
	dbRepo := postgres.NewDatabaseRepository(db)
	autoRepo := postgres.NewAutomationRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	creditRepo := postgres.NewCreditRepository(db)
	blogRepo := postgres.NewBlogRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)
	classRepo := postgres.NewClassRepository(db)
	domainRepo := postgres.NewDomainRepository(db)

	// Services
	userSvc := services.NewUserService(userRepo, cfg.Auth.BCryptCost, cfg.Auth.OTPExpiry, log)
	vpsSvc := services.NewVPSService(vpsRepo, orderRepo, creditRepo, log)
	hostingSvc := services.NewHostingService(hostingRepo, orderRepo, creditRepo, log)
	dbSvc := services.NewDatabaseService(dbRepo, orderRepo, creditRepo, log)
	autoSvc := services.NewAutomationService(autoRepo, orderRepo, creditRepo, log)
	orderSvc := services.NewOrderService(orderRepo, vpsRepo, hostingRepo, dbRepo, autoRepo,
		cfg.Billing.MonthlyTerm, cfg.Billing.YearlyTerm, log)
	creditSvc := services.NewCreditService(creditRepo, cfg.Billing.MinTopupIDR, log)
	domainSvc := services.NewDomainService(domainRepo, log)
	blogSvc := services.NewBlogService(blogRepo, log)
	bookmarkSvc := services.NewBookmarkService(bookmarkRepo, log)
	classSvc := services.NewClassService(classRepo, log)

	val := validator.New()

	h := &router.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Auth:       handlers.NewAuthHandler(userSvc, cfg, log, val),
		Catalog:    handlers.NewCatalogHandler(),
		VPS:        handlers.NewVPSHandler(vpsSvc, log, val),
		Hosting:    handlers.NewHostingHandler(hostingSvc, log, val),
		Database:   handlers.NewDatabaseHandler(dbSvc, log, val),
		Automation: handlers.NewAutomationHandler(autoSvc, log, val),
		Domain:     handlers.NewDomainHandler(domainSvc, log),
		Credit:     handlers.NewCreditHandler(creditSvc, log, val),
		Blog:       handlers.NewBlogHandler(blogSvc, log, val),
		Bookmark:   handlers.NewBookmarkHandler(bookmarkSvc, log, val),
		Class:      handlers.NewClassHandler(classSvc, log, val),
		Admin:      handlers.NewAdminHandler(userSvc, orderSvc, creditSvc, log, val),
	}

	scanner, err := worker.NewRenewalScanner(orderSvc, orderRepo, cfg.Billing.RenewalCron, log)
	if err != nil {
		log.Fatalf("failed to create renewal scanner: %v", err)
	}
	if err := scanner.Start(); err != nil {
		log.Fatalf("failed to start renewal scanner: %v", err)
	}
	defer scanner.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}

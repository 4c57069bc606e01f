package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashbook/internal/config"
	"cashbook/internal/database"
	"cashbook/internal/logger"
	"cashbook/internal/notify"
	"cashbook/internal/server"
	"cashbook/internal/services"
)

// @title           Cashbook API
// @version         1.0
// @description     Cashbook is a small-business cash ledger: sales, expenses, debts and the balance they add up to.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if err := appConfig.Validate(); err != nil {
		return err
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("Database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Notification providers
	httpClient := &http.Client{Timeout: appConfig.NotifyTimeout}
	push := notify.NewPushClient(notify.DefaultOneSignalURL, appConfig.OneSignalAppID, appConfig.OneSignalRESTKey, httpClient)
	text := notify.NewWhatsAppClient(notify.DefaultWhatsAppURL, appConfig.WhatsAppToken, appConfig.WhatsAppPhoneNumberID, httpClient)
	if !push.Configured() {
		log.Warn("OneSignal not configured; push notifications will be skipped")
	}
	if !text.Configured() {
		log.Warn("WhatsApp not configured; WhatsApp notifications will be skipped")
	}

	dispatcher, err := newDispatcher(appConfig, notify.NewDeliverer(push, text, appConfig.WhatsAppNotifyTo))
	if err != nil {
		return err
	}

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db, dispatcher, appConfig.Location)
	debtService := services.NewDebtService(db)
	reportService := services.NewReportService(db, transactionService, debtService, appConfig.DashboardRecentLimit)
	auditService := services.NewAuditService(db)
	authService := services.NewAuthService(appConfig.OwnerPasswordHash, appConfig.JWTSecret, appConfig.JWTExpirationDur)

	if !authService.Enabled() {
		log.Warn("OWNER_PASSWORD_HASH not set; API is open without login")
	}

	router := server.NewRouter(server.Deps{
		Transactions: transactionService,
		Debts:        debtService,
		Reports:      reportService,
		Audit:        auditService,
		Auth:         authService,
		Pusher:       push,
		TextSender:   text,
		JWTSecret:    appConfig.JWTSecret,
		RelayAPIKey:  appConfig.RelayAPIKey,
		Location:     appConfig.Location,
		Ping:         dbManager.Ping,
		AccessLog:    true,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Cashbook server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			_ = dispatcher.Close(context.Background())
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("HTTP shutdown error: %v", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warnf("Notification dispatcher close error: %v", err)
	}

	log.Info("Server stopped")
	return nil
}

// newDispatcher publishes to the broker when AMQP_URL is set and otherwise
// delivers in-process. Either way delivery runs on worker goroutines.
func newDispatcher(cfg *config.Config, deliverer *notify.Deliverer) (notify.Dispatcher, error) {
	if cfg.AMQPURL != "" {
		broker, err := notify.NewAMQPBroker(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to broker: %w", err)
		}
		logger.Get().Infow("Publishing notifications to broker", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		return notify.NewBrokerQueue(broker, cfg.NotifyWorkers, cfg.NotifyBuffer), nil
	}
	return notify.NewQueue(deliverer.Deliver, cfg.NotifyWorkers, cfg.NotifyBuffer), nil
}

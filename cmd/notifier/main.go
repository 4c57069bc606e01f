// Command notifier consumes notifications published by the API when AMQP_URL
// is set and delivers them to OneSignal and WhatsApp.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cashbook/internal/config"
	"cashbook/internal/logger"
	"cashbook/internal/notify"
)

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Notifier error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.AMQPURL == "" {
		return errors.New("AMQP_URL is required")
	}

	httpClient := &http.Client{Timeout: cfg.NotifyTimeout}
	push := notify.NewPushClient(notify.DefaultOneSignalURL, cfg.OneSignalAppID, cfg.OneSignalRESTKey, httpClient)
	text := notify.NewWhatsAppClient(notify.DefaultWhatsAppURL, cfg.WhatsAppToken, cfg.WhatsAppPhoneNumberID, httpClient)
	deliverer := notify.NewDeliverer(push, text, cfg.WhatsAppNotifyTo)

	broker, err := notify.NewAMQPBroker(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer func() {
		if err := broker.Close(context.Background()); err != nil {
			log.Warnf("Broker close error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = broker.Consume(ctx, deliverer.Deliver)
	if errors.Is(err, context.Canceled) {
		log.Info("Notifier stopped")
		return nil
	}
	return err
}

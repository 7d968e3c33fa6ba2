// Worker consumes invitation.created events from Kafka and sends the invitation email.
// Set KAFKA_BROKERS, NOTIFICATION_KAFKA_TOPIC and KAFKA_GROUP_ID. Deliveries are recorded as
// OpenTelemetry log records when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workspace-hub/backend/internal/config"
	"workspace-hub/backend/internal/notification"
	otelsetup "workspace-hub/backend/internal/telemetry/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("worker: KAFKA_BROKERS is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := otelsetup.NewProviders(ctx, cfg.OTelEndpoint, "workspace-hub-notifier", cfg.OTelInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(sctx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	reader := notification.NewKafkaReader(brokers, cfg.NotificationKafkaTopic, cfg.KafkaGroupID)
	defer reader.Close()

	log.Printf("worker: consuming from %s (group %s)", cfg.NotificationKafkaTopic, cfg.KafkaGroupID)
	d := notification.NewDispatcher(notification.LogMailer{}, otelsetup.NewDeliveryRecorder(providers.LoggerProvider))
	d.Run(ctx, reader)
	log.Println("worker: stopped")
}

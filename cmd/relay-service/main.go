package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gabril452/pix-relay/internal/config"
	httpdelivery "github.com/gabril452/pix-relay/internal/delivery/http"
	"github.com/gabril452/pix-relay/internal/delivery/http/handlers"
	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/gabril452/pix-relay/internal/infrastructure/attribution"
	"github.com/gabril452/pix-relay/internal/infrastructure/gateway"
	"github.com/gabril452/pix-relay/internal/infrastructure/inmemory"
	"github.com/gabril452/pix-relay/internal/infrastructure/kafka"
	"github.com/gabril452/pix-relay/internal/infrastructure/metrics"
	"github.com/gabril452/pix-relay/internal/infrastructure/migrate"
	"github.com/gabril452/pix-relay/internal/infrastructure/postgres"
	"github.com/gabril452/pix-relay/internal/infrastructure/postgres/repository"
	"github.com/gabril452/pix-relay/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	// Init transaction store: Postgres when a DSN is configured, the
	// process-lifetime in-memory table otherwise.
	var transactionRepo domain.TransactionRepository
	if cfg.RelayDB.Dsn != "" {
		db := postgres.MustInitDB(cfg)
		if cfg.RelayDB.MigrationsPath != "" {
			if err := migrate.RunMigrations(db, cfg.RelayDB.MigrationsPath); err != nil {
				log.Fatalf("failed to run migrations: %v", err)
			}
		}
		transactionRepo = repository.NewDefaultTransactionRepository(db)
	} else {
		log.Println("no database DSN configured, using in-memory transaction store")
		transactionRepo = inmemory.NewTransactionRepository()
	}

	// Init metrics
	relayMetrics := metrics.NewRelayMetrics()

	// Init kafka publisher
	var pub domain.PublisherPort
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		pub = kafka.NewDefaultKafkaPublisher(brokers)
	}

	// Init gateway client
	pixGateway := gateway.NewClient(cfg.Gateway)

	// Init attribution forwarder and drain its error channel
	forwarder := attribution.NewForwarder(cfg.Attribution)
	defer forwarder.Close()
	go func() {
		for err := range forwarder.Errors() {
			relayMetrics.RecordNotificationFailure()
			slog.Error("attribution delivery lost", "error", err.Error())
		}
	}()

	// Init transaction usecase
	uc := usecase.NewDefaultTransactionUsecase(
		transactionRepo,
		pixGateway,
		forwarder,
		pub,
		relayMetrics,
		cfg.Kafka.Topic,
	)

	// HTTP server
	txHandler := handlers.NewTransactionHandler(uc)
	webhookHandler := handlers.NewWebhookHandler(uc, cfg.Gateway.WebhookSecret, relayMetrics)
	router := httpdelivery.NewRouter(txHandler, webhookHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("relay service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/gabril452/pix-relay/internal/infrastructure/kafka"
	"github.com/gabril452/pix-relay/internal/infrastructure/metrics"
	transactiondto "github.com/gabril452/pix-relay/internal/usecase/dto/transaction"
)

type TransactionUsecase interface {
	CreateCharge(ctx context.Context, input *transactiondto.CreateChargeInput) (*transactiondto.CreateChargeOutput, error)
	ProcessWebhook(ctx context.Context, input *transactiondto.WebhookInput) (*transactiondto.WebhookOutput, error)
	GetTransactionStatus(transactionID string) (*transactiondto.StatusOutput, error)
}

type DefaultTransactionUsecase struct {
	TransactionRepo domain.TransactionRepository
	Gateway         domain.PixGateway
	Forwarder       domain.ForwarderPort
	Publisher       domain.PublisherPort
	Metrics         *metrics.RelayMetrics

	EventTopic string
}

func NewDefaultTransactionUsecase(
	transactionRepo domain.TransactionRepository,
	gateway domain.PixGateway,
	forwarder domain.ForwarderPort,
	publisher domain.PublisherPort,
	relayMetrics *metrics.RelayMetrics,
	eventTopic string) *DefaultTransactionUsecase {

	return &DefaultTransactionUsecase{
		TransactionRepo: transactionRepo,
		Gateway:         gateway,
		Forwarder:       forwarder,
		Publisher:       publisher,
		Metrics:         relayMetrics,
		EventTopic:      eventTopic,
	}
}

// publishTransactionEvent ships a lifecycle event to Kafka without
// touching the request path. The publisher is optional.
func (uc *DefaultTransactionUsecase) publishTransactionEvent(tx *domain.Transaction) {
	if uc.Publisher == nil {
		return
	}

	go func(event kafka.TransactionEvent) {
		msg, err := event.Message()
		if err != nil {
			slog.Error("failed to encode transaction event", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(uc.EventTopic, msg); err != nil {
			slog.Error("failed to publish transaction event",
				"transaction_id", event.TransactionID,
				"error", err.Error(),
			)
		}
	}(kafka.TransactionEvent{
		TransactionID: tx.TransactionID,
		OrderID:       tx.OrderID,
		Status:        string(tx.Status),
		Amount:        tx.Amount,
		OccurredAt:    time.Now(),
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
	transactiondto "github.com/gabril452/pix-relay/internal/usecase/dto/transaction"
)

// ProcessWebhook reconciles a gateway status delivery with the stored
// transaction. Unknown transactions are acknowledged as success: the
// gateway must not treat them as retryable failures.
func (uc *DefaultTransactionUsecase) ProcessWebhook(ctx context.Context, input *transactiondto.WebhookInput) (*transactiondto.WebhookOutput, error) {
	tx, err := uc.TransactionRepo.GetByID(input.TransactionID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			if uc.Metrics != nil {
				uc.Metrics.RecordWebhook("unknown_transaction")
			}
			slog.Warn("webhook for unknown transaction",
				"transaction_id", input.TransactionID,
				"event", input.Event,
			)
			return &transactiondto.WebhookOutput{
				Acknowledged: true,
				Message:      "Transaction not found but acknowledged",
			}, nil
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	newStatus := domain.MapGatewayStatus(input.RawStatus)

	if tx.Status.Terminal() {
		// Sticky terminal state: a repeated or conflicting delivery
		// must not rewrite a resolved transaction.
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhook("already_resolved")
		}
		slog.Info("webhook ignored for resolved transaction",
			"transaction_id", tx.TransactionID,
			"current", string(tx.Status),
			"raw_status", input.RawStatus,
		)
		return &transactiondto.WebhookOutput{
			Acknowledged: true,
			Message:      "Transaction already resolved",
			Status:       tx.Status,
		}, nil
	}

	if newStatus == domain.StatusPending {
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhook("no_change")
		}
		return &transactiondto.WebhookOutput{
			Acknowledged: true,
			Message:      "No status change",
			Status:       tx.Status,
		}, nil
	}

	paidAt := input.PaidAt
	if newStatus == domain.StatusPaid && paidAt == nil {
		now := time.Now()
		paidAt = &now
	}

	if err := uc.TransactionRepo.UpdateStatus(tx.TransactionID, newStatus, paidAt); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	tx.Status = newStatus
	if newStatus == domain.StatusPaid {
		tx.PaidAt = paidAt
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordWebhook(string(newStatus))
		uc.Metrics.RecordNotificationEnqueued(string(newStatus.OrderEventStatus()))
	}

	uc.Forwarder.Notify(tx, newStatus.OrderEventStatus())
	uc.publishTransactionEvent(tx)

	slog.Info("webhook processed",
		"transaction_id", tx.TransactionID,
		"status", string(newStatus),
		"correlation_id", input.CorrelationID,
	)

	return &transactiondto.WebhookOutput{
		Acknowledged: true,
		Message:      "Webhook processed",
		Status:       newStatus,
	}, nil
}

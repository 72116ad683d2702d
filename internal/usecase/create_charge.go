package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
	transactiondto "github.com/gabril452/pix-relay/internal/usecase/dto/transaction"
	"github.com/jaevor/go-nanoid"
)

var newOrderID = mustOrderIDGenerator()

func mustOrderIDGenerator() func() string {
	gen, err := nanoid.Standard(21)
	if err != nil {
		panic(fmt.Sprintf("nanoid generator: %v", err))
	}
	return gen
}

// CreateCharge creates a PIX charge upstream, records the transaction as
// pending and notifies the attribution service that payment is awaited.
func (uc *DefaultTransactionUsecase) CreateCharge(ctx context.Context, input *transactiondto.CreateChargeInput) (*transactiondto.CreateChargeOutput, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	orderID := newOrderID()

	start := time.Now()
	result := uc.Gateway.CreateCharge(ctx, &domain.ChargeInput{
		OrderID:  orderID,
		Amount:   input.Amount,
		Customer: input.Customer,
		Items:    input.Items,
		Tracking: input.Tracking,
	})
	if uc.Metrics != nil {
		uc.Metrics.RecordGatewayRequestDuration(time.Since(start).Seconds())
	}

	if !result.Success {
		if uc.Metrics != nil {
			uc.Metrics.RecordChargeFailed()
		}
		slog.Error("charge creation refused by gateway",
			"order_id", orderID,
			"error", result.Error,
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrChargeFailed, result.Error)
	}

	tx := &domain.Transaction{
		TransactionID: result.TransactionID,
		OrderID:       orderID,
		Status:        domain.StatusPending,
		Amount:        input.Amount,
		Customer:      input.Customer,
		Tracking:      input.Tracking,
		Items:         input.Items,
		CreatedAt:     time.Now(),
	}

	if err := uc.TransactionRepo.Save(tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordChargeCreated(tx.Amount, "BRL")
		uc.Metrics.RecordNotificationEnqueued(string(domain.EventStatusWaiting))
	}

	uc.Forwarder.Notify(tx, domain.EventStatusWaiting)
	uc.publishTransactionEvent(tx)

	slog.Info("charge created",
		"order_id", orderID,
		"transaction_id", tx.TransactionID,
		"amount", tx.Amount,
	)

	return &transactiondto.CreateChargeOutput{
		OrderID:       orderID,
		TransactionID: result.TransactionID,
		QRCode:        result.QRCode,
		QRCodeImage:   result.QRCodeImage,
		ExpiresAt:     result.ExpiresAt,
	}, nil
}

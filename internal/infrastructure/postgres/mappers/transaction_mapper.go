package mappers

import (
	"encoding/json"

	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/gabril452/pix-relay/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	tx := &domain.Transaction{
		TransactionID: model.TransactionID,
		OrderID:       model.OrderID,
		Status:        model.Status,
		Amount:        model.Amount,
		Customer: domain.Customer{
			Name:     model.CustomerName,
			Email:    model.CustomerEmail,
			Phone:    model.CustomerPhone,
			Document: model.CustomerDocument,
		},
		CreatedAt: model.CreatedAt,
		PaidAt:    model.PaidAt,
	}

	if model.TrackingJSON != "" {
		_ = json.Unmarshal([]byte(model.TrackingJSON), &tx.Tracking)
	}
	if model.ItemsJSON != "" {
		_ = json.Unmarshal([]byte(model.ItemsJSON), &tx.Items)
	}

	return tx
}

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	trackingJSON, _ := json.Marshal(tx.Tracking)
	itemsJSON, _ := json.Marshal(tx.Items)

	return &models.TransactionModel{
		TransactionID:    tx.TransactionID,
		OrderID:          tx.OrderID,
		Status:           tx.Status,
		Amount:           tx.Amount,
		CustomerName:     tx.Customer.Name,
		CustomerEmail:    tx.Customer.Email,
		CustomerPhone:    tx.Customer.Phone,
		CustomerDocument: tx.Customer.Document,
		TrackingJSON:     string(trackingJSON),
		ItemsJSON:        string(itemsJSON),
		CreatedAt:        tx.CreatedAt,
		PaidAt:           tx.PaidAt,
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gabril452/pix-relay/internal/delivery/http/dto/pix/request"
	"github.com/gabril452/pix-relay/internal/delivery/http/dto/pix/response"
	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/gabril452/pix-relay/internal/usecase"
	transactiondto "github.com/gabril452/pix-relay/internal/usecase/dto/transaction"
	"github.com/gorilla/mux"
)

type TransactionHandler struct {
	Usecase usecase.TransactionUsecase
}

func NewTransactionHandler(uc usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{Usecase: uc}
}

func (h *TransactionHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var req request.CreateChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	output, err := h.Usecase.CreateCharge(r.Context(), &transactiondto.CreateChargeInput{
		Amount: req.Amount,
		Customer: domain.Customer{
			Name:     req.Customer.Name,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
			Document: req.Customer.Document,
		},
		Items: items,
		Tracking: domain.TrackingParams{
			Src:         req.Tracking.Src,
			Sck:         req.Tracking.Sck,
			UTMSource:   req.Tracking.UTMSource,
			UTMMedium:   req.Tracking.UTMMedium,
			UTMCampaign: req.Tracking.UTMCampaign,
			UTMContent:  req.Tracking.UTMContent,
			UTMTerm:     req.Tracking.UTMTerm,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrChargeFailed):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, response.CreateChargeResponse{
		Success:       true,
		OrderID:       output.OrderID,
		TransactionID: output.TransactionID,
		QRCode:        output.QRCode,
		QRCodeImage:   output.QRCodeImage,
		ExpiresAt:     output.ExpiresAt,
	})
}

func (h *TransactionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	transactionID := mux.Vars(r)["id"]
	if transactionID == "" {
		writeError(w, http.StatusBadRequest, "transaction id is required")
		return
	}

	output, err := h.Usecase.GetTransactionStatus(transactionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := response.StatusResponse{Status: string(output.Status)}
	if output.PaidAt != nil {
		resp.PaidAt = output.PaidAt.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response.ErrorResponse{Success: false, Error: msg})
}

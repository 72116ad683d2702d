package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gabril452/pix-relay/internal/delivery/http/dto/pix/request"
	"github.com/gabril452/pix-relay/internal/delivery/http/dto/pix/response"
	"github.com/gabril452/pix-relay/internal/infrastructure/metrics"
	"github.com/gabril452/pix-relay/internal/infrastructure/signature"
	"github.com/gabril452/pix-relay/internal/usecase"
	transactiondto "github.com/gabril452/pix-relay/internal/usecase/dto/transaction"
)

type WebhookHandler struct {
	Usecase       usecase.TransactionUsecase
	WebhookSecret string
	Metrics       *metrics.RelayMetrics
}

func NewWebhookHandler(uc usecase.TransactionUsecase, webhookSecret string, relayMetrics *metrics.RelayMetrics) *WebhookHandler {
	return &WebhookHandler{
		Usecase:       uc,
		WebhookSecret: webhookSecret,
		Metrics:       relayMetrics,
	}
}

// HandleWebhook verifies the delivery signature over the raw body before
// any decoding, then hands the event to the reconciliation flow.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	sig := r.Header.Get("x-signature")
	if sig == "" {
		sig = r.Header.Get("signature")
	}

	if !signature.Verify(rawBody, sig, h.WebhookSecret) {
		if h.Metrics != nil {
			h.Metrics.RecordSignatureRejected()
		}
		writeError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var req request.WebhookRequest
	if err := json.Unmarshal(rawBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "transaction_id is required")
		return
	}

	var paidAt *time.Time
	if req.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339, req.PaidAt); err == nil {
			paidAt = &t
		}
	}

	output, err := h.Usecase.ProcessWebhook(r.Context(), &transactiondto.WebhookInput{
		Event:         req.Event,
		TransactionID: req.TransactionID,
		RawStatus:     req.Status,
		PaidAt:        paidAt,
		CorrelationID: req.Data.CorrelationID,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, response.WebhookResponse{
		Success: output.Acknowledged,
		Message: output.Message,
	})
}

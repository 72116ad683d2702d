package http

import (
	"net/http"

	"github.com/gabril452/pix-relay/internal/delivery/http/handlers"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(txHandler *handlers.TransactionHandler, webhookHandler *handlers.WebhookHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	api := r.PathPrefix("/api/v1/pix").Subrouter()
	api.HandleFunc("/charges", txHandler.CreateCharge).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}", txHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/webhook", webhookHandler.HandleWebhook).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

// requestIDMiddleware tags every request so log lines from the charge
// and webhook flows can be correlated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

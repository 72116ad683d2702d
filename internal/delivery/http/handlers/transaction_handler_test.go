package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gabril452/pix-relay/internal/delivery/http/dto/pix/response"
	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/gabril452/pix-relay/internal/infrastructure/inmemory"
	"github.com/gabril452/pix-relay/internal/usecase"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newTransactionHandler(repo *inmemory.TransactionRepository) *TransactionHandler {
	uc := usecase.NewDefaultTransactionUsecase(repo, stubGateway{}, nopForwarder{}, nil, nil, "")
	return NewTransactionHandler(uc)
}

func TestCreateChargeEndpoint(t *testing.T) {
	repo := inmemory.NewTransactionRepository()
	h := newTransactionHandler(repo)

	body, _ := json.Marshal(map[string]any{
		"amount": 49.90,
		"customer": map[string]string{
			"name":  "Ana",
			"email": "a@x.com",
			"phone": "11999999999",
			"cpf":   "12345678900",
		},
		"items": []map[string]any{
			{"id": "sku-1", "name": "Plano Mensal", "price": 49.90, "quantity": 1},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pix/charges", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateCharge(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp response.CreateChargeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "tx-1", resp.TransactionID)
	require.NotEmpty(t, resp.OrderID)

	stored, err := repo.GetByID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)
	require.Equal(t, 49.90, stored.Amount)
	require.Equal(t, "12345678900", stored.Customer.Document)
}

func TestCreateChargeEndpointRejectsBadPayload(t *testing.T) {
	h := newTransactionHandler(inmemory.NewTransactionRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pix/charges", bytes.NewReader([]byte(`{`)))
	rec := httptest.NewRecorder()
	h.CreateCharge(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/pix/charges", bytes.NewReader([]byte(`{"amount":0}`)))
	rec = httptest.NewRecorder()
	h.CreateCharge(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStatusEndpoint(t *testing.T) {
	repo := inmemory.NewTransactionRepository()
	require.NoError(t, repo.Save(&domain.Transaction{
		TransactionID: "tx-1",
		OrderID:       "order-1",
		Status:        domain.StatusPaid,
		Amount:        49.90,
	}))
	h := newTransactionHandler(repo)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/pix/transactions/{id}", h.GetStatus).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pix/transactions/tx-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "paid", resp.Status)

	// Unknown transactions read as pending.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pix/transactions/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "pending", resp.Status)
	require.Empty(t, resp.PaidAt)
}

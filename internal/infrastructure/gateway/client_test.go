package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gabril452/pix-relay/internal/config"
	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/stretchr/testify/require"
)

func testInput() *domain.ChargeInput {
	return &domain.ChargeInput{
		OrderID: "order-1",
		Amount:  49.90,
		Customer: domain.Customer{
			Name:     "Ana",
			Email:    "a@x.com",
			Phone:    "11999999999",
			Document: "12345678900",
		},
		Tracking: domain.TrackingParams{UTMSource: "ads"},
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.GatewayConfig{
		BaseURL:     baseURL,
		APIKey:      "key",
		APISecret:   "secret",
		CallbackURL: "https://relay.example/webhook",
	})
}

func TestCreateChargeSuccess(t *testing.T) {
	var received chargeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/pix/charges", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{
			"transaction_id": "tx-123",
			"qr_code":        "00020126pix...",
			"qr_code_image":  "data:image/png;base64,abc",
			"expires_at":     "2026-09-01T12:00:00Z",
		})
	}))
	defer server.Close()

	result := newTestClient(server.URL).CreateCharge(context.Background(), testInput())

	require.True(t, result.Success)
	require.Equal(t, "tx-123", result.TransactionID)
	require.Equal(t, "00020126pix...", result.QRCode)
	require.Equal(t, "data:image/png;base64,abc", result.QRCodeImage)
	require.Equal(t, "2026-09-01T12:00:00Z", result.ExpiresAt)

	// Credentials travel in the body.
	require.Equal(t, "key", received.APIKey)
	require.Equal(t, "secret", received.APISecret)
	require.Equal(t, 49.90, received.Amount)
	require.Equal(t, "https://relay.example/webhook", received.CallbackURL)
	require.Equal(t, "ads", received.Tags["utm_source"])
}

func TestCreateChargeFieldNameVariants(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
	}{
		{"txid and pix_code", map[string]any{
			"txid": "tx-1", "pix_code": "pix", "qr_code_base64": "img", "expiration_date": "soon",
		}},
		{"id and copy_paste", map[string]any{
			"id": "tx-1", "copy_paste": "pix",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(tc.body)
			}))
			defer server.Close()

			result := newTestClient(server.URL).CreateCharge(context.Background(), testInput())
			require.True(t, result.Success)
			require.Equal(t, "tx-1", result.TransactionID)
			require.Equal(t, "pix", result.QRCode)
		})
	}
}

func TestCreateChargeMissingCredentials(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(config.GatewayConfig{BaseURL: server.URL})
	result := client.CreateCharge(context.Background(), testInput())

	require.False(t, result.Success)
	require.Contains(t, result.Error, "credentials")
	require.Equal(t, int64(0), calls.Load(), "no outbound call may be attempted")
}

func TestCreateChargeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid document"})
	}))
	defer server.Close()

	result := newTestClient(server.URL).CreateCharge(context.Background(), testInput())

	require.False(t, result.Success)
	require.Equal(t, "invalid document", result.Error)
}

func TestCreateChargeUpstreamErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).CreateCharge(context.Background(), testInput())

	require.False(t, result.Success)
	require.Contains(t, result.Error, "500")
}

func TestCreateChargeMissingTransactionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"qr_code": "pix"})
	}))
	defer server.Close()

	result := newTestClient(server.URL).CreateCharge(context.Background(), testInput())

	require.False(t, result.Success)
	require.Contains(t, result.Error, "transaction id")
}

func TestCreateChargeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	result := newTestClient(server.URL).CreateCharge(context.Background(), testInput())

	require.False(t, result.Success)
	require.NotEmpty(t, result.Error)
}

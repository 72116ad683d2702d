package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabril452/pix-relay/internal/config"
	"github.com/gabril452/pix-relay/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client creates PIX charges against the upstream gateway. Credentials
// travel in the request body, which is how this gateway authenticates.
type Client struct {
	baseURL     string
	apiKey      string
	apiSecret   string
	callbackURL string
	httpClient  *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		apiSecret:   cfg.APISecret,
		callbackURL: cfg.CallbackURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// CreateCharge issues a single synchronous charge-creation call. It
// never returns a Go error: configuration, transport and upstream
// failures all come back as a ChargeResult with Success=false.
func (c *Client) CreateCharge(ctx context.Context, input *domain.ChargeInput) *domain.ChargeResult {
	if c.apiKey == "" || c.apiSecret == "" {
		return failure("gateway credentials are not configured")
	}

	body, err := json.Marshal(c.buildRequest(input))
	if err != nil {
		return failure(fmt.Sprintf("failed to encode charge request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pix/charges", bytes.NewBuffer(body))
	if err != nil {
		return failure(fmt.Sprintf("failed to build charge request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return failure(err.Error())
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return failure(err.Error())
	}

	var decoded chargeResponse
	if err := json.Unmarshal(responseBodyBytes, &decoded); err != nil {
		return failure(fmt.Sprintf("failed to decode gateway response: %v", err))
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		msg := firstNonEmpty(decoded.Message, decoded.Error)
		if msg == "" {
			msg = fmt.Sprintf("gateway returned status %d", response.StatusCode)
		}
		return failure(msg)
	}

	transactionID := firstNonEmpty(decoded.TransactionID, decoded.ID, decoded.TxID)
	if transactionID == "" {
		return failure("gateway response is missing a transaction id")
	}

	return &domain.ChargeResult{
		Success:       true,
		TransactionID: transactionID,
		QRCode:        firstNonEmpty(decoded.QRCode, decoded.PixCode, decoded.CopyPaste),
		QRCodeImage:   firstNonEmpty(decoded.QRCodeImage, decoded.QRCodeBase64),
		ExpiresAt:     firstNonEmpty(decoded.ExpiresAt, decoded.ExpirationDate),
	}
}

func (c *Client) buildRequest(input *domain.ChargeInput) chargeRequest {
	req := chargeRequest{
		APIKey:      c.apiKey,
		APISecret:   c.apiSecret,
		Amount:      input.Amount,
		OrderID:     input.OrderID,
		CallbackURL: c.callbackURL,
		PayerName:   input.Customer.Name,
		PayerEmail:  input.Customer.Email,
		PayerPhone:  input.Customer.Phone,
		PayerDoc:    input.Customer.Document,
	}
	if input.CallbackURL != "" {
		req.CallbackURL = input.CallbackURL
	}
	for _, item := range input.Items {
		req.Items = append(req.Items, chargeItem{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	req.Tags = campaignTags(input.Tracking)
	return req
}

func campaignTags(t domain.TrackingParams) map[string]string {
	tags := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			tags[key] = value
		}
	}
	put("src", t.Src)
	put("sck", t.Sck)
	put("utm_source", t.UTMSource)
	put("utm_medium", t.UTMMedium)
	put("utm_campaign", t.UTMCampaign)
	put("utm_content", t.UTMContent)
	put("utm_term", t.UTMTerm)
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func failure(msg string) *domain.ChargeResult {
	return &domain.ChargeResult{
		Success: false,
		Error:   msg,
	}
}

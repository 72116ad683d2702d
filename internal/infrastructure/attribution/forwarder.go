package attribution

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gabril452/pix-relay/internal/config"
	"github.com/gabril452/pix-relay/internal/domain"
)

const requestTimeout = 5 * time.Second

// Forwarder posts order events to the attribution service off the
// request path. Notify enqueues and returns immediately; a background
// worker drains the queue. Delivery failures surface on Errors() and are
// logged, never returned to the payment flow. There is no retry: a lost
// notification is an accepted loss for this best-effort analytics signal.
type Forwarder struct {
	apiURL            string
	apiToken          string
	platform          string
	gatewayFeePercent float64
	httpClient        *http.Client

	queue chan *OrderPayload
	errs  chan error

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

func NewForwarder(cfg config.AttributionConfig) *Forwarder {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}

	f := &Forwarder{
		apiURL:            cfg.APIURL,
		apiToken:          cfg.APIToken,
		platform:          cfg.Platform,
		gatewayFeePercent: cfg.GatewayFeePercent,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		queue: make(chan *OrderPayload, queueSize),
		errs:  make(chan error, queueSize),
		done:  make(chan struct{}),
	}

	go f.run()

	return f
}

// Notify shapes the transaction into an order event and enqueues it.
// A full queue drops the event rather than blocking the caller, and a
// closed forwarder drops it rather than panicking on the queue channel.
func (f *Forwarder) Notify(tx *domain.Transaction, status domain.OrderEventStatus) {
	payload := f.buildPayload(tx, status)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		f.report(fmt.Errorf("attribution forwarder closed, dropping event for order %s", tx.OrderID))
		return
	}
	select {
	case f.queue <- payload:
		f.mu.Unlock()
	default:
		f.mu.Unlock()
		f.report(fmt.Errorf("attribution queue full, dropping event for order %s", tx.OrderID))
	}
}

// Errors exposes delivery failures so they are observable by callers and
// tests instead of only by logs.
func (f *Forwarder) Errors() <-chan error {
	return f.errs
}

// Close stops the worker after the queue drains.
func (f *Forwarder) Close() {
	f.closeOnce.Do(func() {
		f.mu.Lock()
		f.closed = true
		close(f.queue)
		f.mu.Unlock()
		<-f.done
	})
}

func (f *Forwarder) run() {
	defer close(f.done)
	for payload := range f.queue {
		if err := f.send(payload); err != nil {
			f.report(fmt.Errorf("attribution notify for order %s: %w", payload.OrderID, err))
			continue
		}
		slog.Info("order event forwarded",
			"order_id", payload.OrderID,
			"status", payload.Status,
		)
	}
}

func (f *Forwarder) send(payload *OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, f.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-token", f.apiToken)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("attribution service returned status %d", resp.StatusCode)
	}

	return nil
}

func (f *Forwarder) report(err error) {
	slog.Error("attribution forwarding failed", "error", err.Error())
	select {
	case f.errs <- err:
	default:
	}
}

func (f *Forwarder) buildPayload(tx *domain.Transaction, status domain.OrderEventStatus) *OrderPayload {
	totalCents := Cents(tx.Amount)
	feeCents := Cents(tx.Amount * f.gatewayFeePercent / 100)

	payload := &OrderPayload{
		OrderID:       tx.OrderID,
		Platform:      f.platform,
		PaymentMethod: "pix",
		Status:        string(status),
		CreatedAt:     formatTime(tx.CreatedAt),
		Customer: CustomerPayload{
			Name:     tx.Customer.Name,
			Email:    tx.Customer.Email,
			Phone:    tx.Customer.Phone,
			Document: tx.Customer.Document,
		},
		TrackingParameters: TrackingPayload{
			Src:         tx.Tracking.Src,
			Sck:         tx.Tracking.Sck,
			UTMSource:   tx.Tracking.UTMSource,
			UTMMedium:   tx.Tracking.UTMMedium,
			UTMCampaign: tx.Tracking.UTMCampaign,
			UTMContent:  tx.Tracking.UTMContent,
			UTMTerm:     tx.Tracking.UTMTerm,
		},
		Commission: CommissionPayload{
			TotalPriceInCents:     totalCents,
			GatewayFeeInCents:     feeCents,
			UserCommissionInCents: totalCents - feeCents,
		},
	}

	if status == domain.EventStatusPaid && tx.PaidAt != nil {
		payload.ApprovedDate = formatTime(*tx.PaidAt)
	}

	for _, item := range tx.Items {
		payload.Products = append(payload.Products, ProductPayload{
			ID:           item.ID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			PriceInCents: Cents(item.UnitPrice),
		})
	}
	if len(payload.Products) == 0 {
		// Single-line fallback so the attribution service always sees a product.
		payload.Products = []ProductPayload{{
			ID:           tx.OrderID,
			Name:         "PIX charge",
			Quantity:     1,
			PriceInCents: totalCents,
		}}
	}

	return payload
}

// Cents converts a major-unit amount to minor currency units.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

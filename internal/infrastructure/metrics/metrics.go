package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RelayMetrics holds every metric the relay exports.
type RelayMetrics struct {
	ChargesCreatedTotal prometheus.CounterVec
	ChargeAmountTotal   prometheus.CounterVec

	WebhooksReceivedTotal         prometheus.CounterVec
	WebhookSignatureRejectedTotal prometheus.Counter

	NotificationsEnqueuedTotal prometheus.CounterVec
	NotificationFailuresTotal  prometheus.Counter

	GatewayRequestDuration prometheus.Histogram
}

func NewRelayMetrics() *RelayMetrics {
	return &RelayMetrics{
		ChargesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_charges_created_total",
				Help: "Charge-creation attempts by result",
			},
			[]string{"result"},
		),

		ChargeAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_charge_amount_total",
				Help: "Total fiat amount of successfully created charges",
			},
			[]string{"currency"},
		),

		WebhooksReceivedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_webhooks_received_total",
				Help: "Webhook deliveries by processing outcome",
			},
			[]string{"outcome"},
		),

		WebhookSignatureRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pix_webhook_signature_rejected_total",
				Help: "Webhook deliveries rejected for a bad or missing signature",
			},
		),

		NotificationsEnqueuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_notifications_enqueued_total",
				Help: "Order events handed to the attribution forwarder by status",
			},
			[]string{"status"},
		),

		NotificationFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pix_notification_failures_total",
				Help: "Attribution deliveries that failed permanently",
			},
		),

		GatewayRequestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pix_gateway_request_duration_seconds",
				Help:    "Latency of charge-creation calls to the gateway",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
	}
}

func (m *RelayMetrics) RecordChargeCreated(amount float64, currency string) {
	m.ChargesCreatedTotal.WithLabelValues("success").Inc()
	m.ChargeAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *RelayMetrics) RecordChargeFailed() {
	m.ChargesCreatedTotal.WithLabelValues("failure").Inc()
}

func (m *RelayMetrics) RecordWebhook(outcome string) {
	m.WebhooksReceivedTotal.WithLabelValues(outcome).Inc()
}

func (m *RelayMetrics) RecordSignatureRejected() {
	m.WebhookSignatureRejectedTotal.Inc()
}

func (m *RelayMetrics) RecordNotificationEnqueued(status string) {
	m.NotificationsEnqueuedTotal.WithLabelValues(status).Inc()
}

func (m *RelayMetrics) RecordNotificationFailure() {
	m.NotificationFailuresTotal.Inc()
}

func (m *RelayMetrics) RecordGatewayRequestDuration(seconds float64) {
	m.GatewayRequestDuration.Observe(seconds)
}

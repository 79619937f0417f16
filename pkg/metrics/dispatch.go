package metrics

import "github.com/prometheus/client_golang/prometheus"

// DispatchMetrics counts transactional email dispatches per template kind.
type DispatchMetrics struct {
	sent   *prometheus.CounterVec
	failed *prometheus.CounterVec
}

// NewDispatchMetrics registers dispatch counters on the provided registerer.
func NewDispatchMetrics(reg prometheus.Registerer) *DispatchMetrics {
	if reg == nil {
		return &DispatchMetrics{}
	}
	sent := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_sent_total",
		Help: "Transactional emails accepted by the provider.",
	}, []string{"kind"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_failed_total",
		Help: "Transactional email dispatches that errored.",
	}, []string{"kind"})
	reg.MustRegister(sent, failed)
	return &DispatchMetrics{sent: sent, failed: failed}
}

// IncSent increments the sent counter for the template kind.
func (d *DispatchMetrics) IncSent(kind string) {
	if d == nil || d.sent == nil {
		return
	}
	d.sent.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncFailed increments the failed counter for the template kind.
func (d *DispatchMetrics) IncFailed(kind string) {
	if d == nil || d.failed == nil {
		return
	}
	d.failed.WithLabelValues(normalizeLabel(kind)).Inc()
}

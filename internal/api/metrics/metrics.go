// Package metrics defines the custom Prometheus metrics of the sysadmin API.
// It is the single source of truth for metric names, labels and help strings.
//
// Build one Metrics per registry with New; the router serves that registry on
// /metrics next to the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sysadmin"

// Login results.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

type Metrics struct {
	// RecordsCreatedTotal counts rows inserted through the API.
	// Label:
	//   - entity: "user" or "resource"
	RecordsCreatedTotal *prometheus.CounterVec

	// RecordsDeletedTotal counts rows actually removed (affected count > 0).
	// Label:
	//   - entity: "user" or "resource"
	RecordsDeletedTotal *prometheus.CounterVec

	// LoginAttemptsTotal counts POST /login outcomes.
	// Label:
	//   - result: "success" or "failure"
	LoginAttemptsTotal *prometheus.CounterVec

	// ErrorResponsesTotal counts responses rendered by the error handler.
	// Label:
	//   - kind: not_found, invalid_input, business_rule, http or internal
	ErrorResponsesTotal *prometheus.CounterVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers the metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_created_total",
				Help:      "Total number of records created, by entity.",
			},
			[]string{"entity"},
		),
		RecordsDeletedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_deleted_total",
				Help:      "Total number of records deleted, by entity.",
			},
			[]string{"entity"},
		),
		LoginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of login attempts, by result.",
			},
			[]string{"result"},
		),
		ErrorResponsesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "error_responses_total",
				Help:      "Total number of error responses, by error kind.",
			},
			[]string{"kind"},
		),
	}
}

// The helpers below are no-ops on a nil *Metrics so handlers can be built
// without instrumentation in tests.

func (m *Metrics) RecordCreated(entity string) {
	if m == nil {
		return
	}
	m.RecordsCreatedTotal.WithLabelValues(entity).Inc()
}

func (m *Metrics) RecordsDeleted(entity string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RecordsDeletedTotal.WithLabelValues(entity).Add(float64(n))
}

func (m *Metrics) LoginAttempt(result string) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ErrorResponse(kind string) {
	if m == nil {
		return
	}
	m.ErrorResponsesTotal.WithLabelValues(kind).Inc()
}

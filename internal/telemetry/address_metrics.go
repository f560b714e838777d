package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Validation outcome labels.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"

	ReasonNone          = "none"
	ReasonShape         = "shape"
	ReasonEmptyField    = "empty_field"
	ReasonExtraSegments = "extra_segments"
)

// AddressMetrics holds Prometheus metrics for address validation.
type AddressMetrics struct {
	// Validations counts every Validate call by result and reason.
	Validations *prometheus.CounterVec

	// Warnings counts accepted addresses that carried a warning.
	Warnings *prometheus.CounterVec
}

// NewAddressMetrics creates the metrics and registers them with reg.
// A nil reg creates unregistered collectors.
func NewAddressMetrics(reg prometheus.Registerer, namespace string) *AddressMetrics {
	if namespace == "" {
		namespace = "addressbook"
	}

	subsystem := "address"
	factory := promauto.With(reg)

	return &AddressMetrics{
		Validations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "validations_total",
				Help:      "Total address validations",
			},
			[]string{"result", "reason"}, // reason: shape, empty_field, extra_segments, none
		),
		Warnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "warnings_total",
				Help:      "Total warnings attached to accepted addresses",
			},
			[]string{"reason"},
		),
	}
}

// RecordValidation increments the validation counter. Safe on a nil receiver.
func (m *AddressMetrics) RecordValidation(result, reason string) {
	if m == nil {
		return
	}
	m.Validations.WithLabelValues(result, reason).Inc()
}

// RecordWarning increments the warning counter. Safe on a nil receiver.
func (m *AddressMetrics) RecordWarning(reason string) {
	if m == nil {
		return
	}
	m.Warnings.WithLabelValues(reason).Inc()
}

// Package bootstrap assembles long-lived components from configuration.
package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/dukerupert/addressbook/internal"
	"github.com/dukerupert/addressbook/internal/address"
	"github.com/dukerupert/addressbook/internal/domain"
	"github.com/dukerupert/addressbook/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// FromEnv loads configuration, builds the logger on w and returns the
// validator it describes. Metrics are registered with reg when it is non-nil.
func FromEnv(w io.Writer, reg prometheus.Registerer) (*address.BasicValidator, *slog.Logger, error) {
	cfg, err := internal.NewConfig()
	if err != nil {
		return nil, nil, domain.WrapError(err, domain.EINTERNAL, "bootstrap.from_env", "config initialization failed")
	}

	logger := internal.NewLogger(w, cfg.Env, cfg.LogLevel)

	v, err := NewAddressValidator(cfg, logger, reg)
	if err != nil {
		return nil, nil, err
	}
	return v, logger, nil
}

// NewAddressValidator builds the validator described by cfg.
// A nil logger is replaced by one built from cfg.Env and cfg.LogLevel on stderr.
// Metrics are registered with reg when it is non-nil.
func NewAddressValidator(cfg *internal.Config, logger *slog.Logger, reg prometheus.Registerer) (*address.BasicValidator, error) {
	if cfg == nil {
		return nil, domain.Invalid("bootstrap.address", "config is required")
	}

	if logger == nil {
		logger = internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)
	}

	var metrics *telemetry.AddressMetrics
	if reg != nil {
		metrics = telemetry.NewAddressMetrics(reg, cfg.MetricsNamespace)
	}

	opts := address.Options{
		RejectEmptyFields:   cfg.Address.RejectEmptyFields,
		RejectExtraSegments: cfg.Address.RejectExtraSegments,
	}

	logger.Info("bootstrap: address validator ready",
		"reject_empty_fields", opts.RejectEmptyFields,
		"reject_extra_segments", opts.RejectExtraSegments,
	)

	return address.NewBasicValidator(opts, logger, metrics), nil
}

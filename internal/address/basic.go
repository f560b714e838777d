package address

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dukerupert/addressbook/internal/domain"
	"github.com/dukerupert/addressbook/internal/telemetry"
)

const (
	opValidate   = "address.validate"
	fieldAddress = "address"

	messageExtraSegments = "address has more than four comma-separated segments"
)

// Options tightens the rules New applies.
// The zero value accepts exactly what New accepts.
type Options struct {
	// RejectEmptyFields fails segments that are blank once trimmed, e.g. " , b, c, d".
	RejectEmptyFields bool

	// RejectExtraSegments fails input with text past the fourth comma
	// instead of discarding it.
	RejectExtraSegments bool
}

// BasicValidator performs format validation without external API calls.
type BasicValidator struct {
	opts    Options
	logger  *slog.Logger
	metrics *telemetry.AddressMetrics
}

// NewBasicValidator creates a new basic address validator.
// logger and metrics may be nil.
func NewBasicValidator(opts Options, logger *slog.Logger, metrics *telemetry.AddressMetrics) *BasicValidator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BasicValidator{
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// Options returns the rules this validator was built with.
func (v *BasicValidator) Options() Options {
	return v.opts
}

// Validate runs New and then the optional segment rules.
func (v *BasicValidator) Validate(ctx context.Context, raw string, isPrivate bool) (*ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		err = domain.Internal(err, opValidate, "address validation cancelled")
		v.logger.Warn("address validation aborted",
			slog.String("op", domain.ErrorOp(err)),
			slog.String("code", domain.ErrorCode(err)),
		)
		return nil, err
	}

	result := &ValidationResult{IsValid: true}

	addr, err := New(raw, isPrivate)
	if err != nil {
		if !domain.IsCode(err, domain.EINVALID) {
			return nil, domain.WrapError(err, domain.EINTERNAL, opValidate, "failed to parse address")
		}
		result.addError(fieldAddress, domain.ErrorMessage(err))
		v.reject(telemetry.ReasonShape, len(raw))
		return result, nil
	}
	result.Address = addr

	reason := telemetry.ReasonNone

	for _, f := range addr.Fields() {
		if !f.IsBlank() {
			continue
		}
		name := f.Kind().String()
		if v.opts.RejectEmptyFields {
			result.addError(name, fmt.Sprintf("%s must not be blank", strings.ReplaceAll(name, "_", " ")))
			reason = telemetry.ReasonEmptyField
			continue
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s is blank", strings.ReplaceAll(name, "_", " ")))
		v.metrics.RecordWarning(telemetry.ReasonEmptyField)
	}

	if HasOverflow(addr.Value()) {
		if v.opts.RejectExtraSegments {
			result.addError(fieldAddress, messageExtraSegments)
			if reason == telemetry.ReasonNone {
				reason = telemetry.ReasonExtraSegments
			}
		} else {
			result.Warnings = append(result.Warnings, "text after the fourth comma was ignored")
			v.metrics.RecordWarning(telemetry.ReasonExtraSegments)
		}
	}

	if !result.IsValid {
		v.reject(reason, len(raw))
		return result, nil
	}

	v.metrics.RecordValidation(telemetry.ResultValid, telemetry.ReasonNone)
	return result, nil
}

// reject records a rejection. Address text is never logged; it may be private.
func (v *BasicValidator) reject(reason string, length int) {
	v.metrics.RecordValidation(telemetry.ResultInvalid, reason)
	v.logger.Debug("address rejected",
		slog.String("op", opValidate),
		slog.String("reason", reason),
		slog.Int("length", length),
	)
}

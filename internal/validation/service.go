// Package validation exposes the swedishid library as an application
// service: coded errors, metrics, tracing and concurrent batches.
package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"swedishid/internal/validation/metrics"
	dErrors "swedishid/pkg/domain-errors"
	"swedishid/pkg/requestcontext"
	"swedishid/pkg/swedishid"
)

var tracer = otel.Tracer("swedishid/internal/validation")

// Config bounds batch work.
type Config struct {
	BatchLimit   int
	BatchWorkers int
}

// Service validates identity numbers. It holds no mutable state and is safe
// for concurrent use.
type Service struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	batchLimit   int
	batchWorkers int
	parseOpts    []swedishid.Option
}

// Option customizes a Service.
type Option func(*Service)

// WithParseOptions forwards options such as a custom check-digit validator
// to every parse call.
func WithParseOptions(opts ...swedishid.Option) Option {
	return func(s *Service) {
		s.parseOpts = append(s.parseOpts, opts...)
	}
}

// New constructs a validation service. A nil metrics is allowed.
func New(logger *slog.Logger, m *metrics.Metrics, cfg Config, opts ...Option) (*Service, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.BatchLimit < 1 || cfg.BatchWorkers < 1 {
		return nil, fmt.Errorf("batch limit and workers must be positive")
	}
	s := &Service{
		logger:       logger,
		metrics:      m,
		batchLimit:   cfg.BatchLimit,
		batchWorkers: cfg.BatchWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Validate parses raw as kind.
//
// Errors: CodeBadRequest for an unsupported kind, CodeInvalidInput for empty
// input, CodeValidation for a bad format or check digit. The swedishid
// sentinel stays reachable through errors.Is.
func (s *Service) Validate(ctx context.Context, kind swedishid.Kind, raw string) (*Result, error) {
	ctx, span := tracer.Start(ctx, "validation.Validate",
		trace.WithAttributes(attribute.String("swedishid.kind", kind.String())),
	)
	defer span.End()

	if !kind.IsValid() {
		span.SetStatus(codes.Error, "unsupported kind")
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unsupported kind %q", kind.String()))
	}

	start := time.Now()
	id, err := swedishid.Parse(kind, raw, s.parseOpts...)
	s.metrics.ObserveLatency(kind.String(), time.Since(start))

	outcome := OutcomeOf(err)
	s.metrics.IncrementOutcome(kind.String(), outcome)
	span.SetAttributes(attribute.String("swedishid.outcome", outcome))

	if err != nil {
		s.logger.DebugContext(ctx, "identity number rejected",
			"request_id", requestcontext.RequestID(ctx),
			"kind", kind.String(),
			"outcome", outcome,
		)
		return nil, translate(err)
	}

	res := toResult(id, requestcontext.Now(ctx))
	s.logger.DebugContext(ctx, "identity number accepted",
		"request_id", requestcontext.RequestID(ctx),
		"kind", kind.String(),
		"number", res.Masked,
	)
	return res, nil
}

// ValidateBatch validates every raw number concurrently and returns the
// items in input order. Individual failures are reported on the item; the
// returned error is only set for a bad request or cancellation.
func (s *Service) ValidateBatch(ctx context.Context, kind swedishid.Kind, raws []string) ([]BatchItem, error) {
	ctx, span := tracer.Start(ctx, "validation.ValidateBatch",
		trace.WithAttributes(
			attribute.String("swedishid.kind", kind.String()),
			attribute.Int("swedishid.batch_size", len(raws)),
		),
	)
	defer span.End()

	if !kind.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unsupported kind %q", kind.String()))
	}
	if len(raws) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "numbers must not be empty")
	}
	if len(raws) > s.batchLimit {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("batch exceeds limit of %d numbers", s.batchLimit))
	}

	items := make([]BatchItem, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Validate(gctx, kind, raw)
			items[i] = BatchItem{Index: i, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, abandoned(err)
	}

	s.metrics.ObserveBatchSize(len(raws))
	return items, nil
}

// abandoned classifies why a batch stopped early. Only a deadline is a
// timeout; a cancelled context means the caller went away.
func abandoned(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "batch validation timed out")
	case errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeCanceled, "batch validation canceled")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "batch validation failed")
	}
}

// translate maps library sentinels onto coded domain errors.
func translate(err error) error {
	switch OutcomeOf(err) {
	case OutcomeEmptyInput:
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "number is required")
	case OutcomeInvalidCheckDigit:
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid check digit")
	case OutcomeInvalidFormat:
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid format")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "validation failed")
	}
}

package bidvalidation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tanafos/bid-rules-core/internal/domain/errors"
)

// Paths reported to the MetricsCollector on success
const (
	PathCreateUpdate = "create_update"
	PathApproval     = "approval"
	PathCandidate    = "candidate"
)

// MetricsCollector receives validation outcomes
type MetricsCollector interface {
	RecordRuleFailure(ctx context.Context, code string)
	RecordValidationPassed(ctx context.Context, path string)
}

// Option configures a Validator
type Option func(*Validator)

func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(v *Validator) {
		v.metrics = metrics
	}
}

// WithClock overrides the source of "now" used by back-dating checks
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// Validator evaluates the bid consistency rules. It holds no per-request
// state and may be shared between goroutines.
type Validator struct {
	logger  *zap.Logger
	metrics MetricsCollector
	now     func() time.Time
}

func New(opts ...Option) *Validator {
	v := &Validator{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.Named("bidvalidation")
	return v
}

func (v *Validator) fail(ctx context.Context, err error, fields ...zap.Field) error {
	code := errors.CodeOf(err)
	v.logger.Debug("bid rule failed", append(fields, zap.String("code", code))...)
	if v.metrics != nil {
		v.metrics.RecordRuleFailure(ctx, code)
	}
	return err
}

func (v *Validator) pass(ctx context.Context, path string) error {
	if v.metrics != nil {
		v.metrics.RecordValidationPassed(ctx, path)
	}
	return nil
}

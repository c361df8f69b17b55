package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tanafos/bid-rules-core/internal/domain/values"
	"github.com/tanafos/bid-rules-core/internal/service/pricing"
)

const namespace = "bidrules"

// Collector records pricing and validation outcomes. It satisfies the
// MetricsCollector interfaces of the pricing and bidvalidation services.
type Collector struct {
	PriceCalculations  *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	ValidationPassed   *prometheus.CounterVec
	DocumentPrice      prometheus.Histogram
}

// NewCollector registers the bid rules metrics on reg. Registering twice on
// the same registry panics, as with any prometheus collector.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		PriceCalculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pricing_calculations_total",
				Help:      "Total number of bid document price calculations by result",
			},
			[]string{"result"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of bid rule violations by rule code",
			},
			[]string{"rule"},
		),
		ValidationPassed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_passed_total",
				Help:      "Total number of bid validations that passed by path",
			},
			[]string{"path"},
		),
		DocumentPrice: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bid_document_price",
				Help:      "Accepted bid document prices",
				Buckets:   prometheus.ExponentialBuckets(10, 4, 10), // 10 to ~2.6M
			},
		),
	}
}

func (c *Collector) RecordPriceCalculation(ctx context.Context, result string, total values.Money) {
	c.PriceCalculations.WithLabelValues(result).Inc()

	// only prices that passed the policy checks are observed
	if result == pricing.ResultCommitted || result == pricing.ResultQuoted {
		f, _ := total.Amount().Float64()
		c.DocumentPrice.Observe(f)
	}
}

func (c *Collector) RecordRuleFailure(ctx context.Context, code string) {
	c.ValidationFailures.WithLabelValues(code).Inc()
}

func (c *Collector) RecordValidationPassed(ctx context.Context, path string) {
	c.ValidationPassed.WithLabelValues(path).Inc()
}

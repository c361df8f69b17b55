package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tanafos/bid-rules-core/internal/domain/values"
	"github.com/tanafos/bid-rules-core/internal/metrics"
	"github.com/tanafos/bid-rules-core/internal/service/bidvalidation"
	"github.com/tanafos/bid-rules-core/internal/service/pricing"
	"github.com/tanafos/bid-rules-core/internal/testutil/fixtures"
)

var (
	_ pricing.MetricsCollector       = (*metrics.Collector)(nil)
	_ bidvalidation.MetricsCollector = (*metrics.Collector)(nil)
)

func TestCollector_RecordPriceCalculation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	ctx := context.Background()

	c.RecordPriceCalculation(ctx, pricing.ResultCommitted, values.MustNewMoneyFromString("1207.5"))
	c.RecordPriceCalculation(ctx, pricing.ResultQuoted, values.MustNewMoneyFromString("23"))
	c.RecordPriceCalculation(ctx, pricing.ResultOverCeiling, values.MustNewMoneyFromString("999999"))

	assert.Equal(t, float64(1), testutil.ToFloat64(c.PriceCalculations.WithLabelValues(pricing.ResultCommitted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.PriceCalculations.WithLabelValues(pricing.ResultOverCeiling)))
	assert.Equal(t, 3, testutil.CollectAndCount(c.PriceCalculations))

	// rejected totals are not observed
	assert.Equal(t, uint64(2), histogramSamples(t, reg, "bidrules_bid_document_price"))
}

func histogramSamples(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestCollector_Validation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	ctx := context.Background()

	c.RecordRuleFailure(ctx, bidvalidation.CodeOffersOpeningBeforeSubmission)
	c.RecordRuleFailure(ctx, bidvalidation.CodeOffersOpeningBeforeSubmission)
	c.RecordValidationPassed(ctx, bidvalidation.PathApproval)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.ValidationFailures.WithLabelValues(bidvalidation.CodeOffersOpeningBeforeSubmission)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.ValidationPassed.WithLabelValues(bidvalidation.PathApproval)))
}

func TestCollector_WiredIntoServices(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	logger := zaptest.NewLogger(t)
	ctx := context.Background()
	gs := fixtures.NewSettingsBuilder().Build()

	prices := pricing.NewService(logger, c)
	require.NoError(t, prices.CalculateAndUpdateBidPrices(ctx, values.MustNewMoneyFromString("1000"), gs, fixtures.NewBidBuilder().Build()))

	v := bidvalidation.New(bidvalidation.WithLogger(logger), bidvalidation.WithMetrics(c))
	require.Error(t, v.ValidateCandidate(ctx, fixtures.NewRequestBuilder().WithRegions().Build(), nil, gs))

	assert.Equal(t, float64(1), testutil.ToFloat64(c.PriceCalculations.WithLabelValues(pricing.ResultCommitted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.ValidationFailures.WithLabelValues(bidvalidation.CodeRequiredDataMissing)))
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)

	assert.Panics(t, func() { metrics.NewCollector(reg) })
}

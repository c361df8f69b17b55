package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

// PricingMetrics mock
type PricingMetrics struct {
	mock.Mock
}

func (m *PricingMetrics) RecordPriceCalculation(ctx context.Context, result string, total values.Money) {
	m.Called(ctx, result, total)
}

// ValidationMetrics mock
type ValidationMetrics struct {
	mock.Mock
}

func (m *ValidationMetrics) RecordRuleFailure(ctx context.Context, code string) {
	m.Called(ctx, code)
}

func (m *ValidationMetrics) RecordValidationPassed(ctx context.Context, path string) {
	m.Called(ctx, path)
}

package pricing

import (
	"context"

	"go.uber.org/zap"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

const (
	CodeInvalidAssociationFees = "INVALID_ASSOCIATION_FEES"
	CodePriceExceedsMaximum    = "BID_DOCUMENT_PRICE_EXCEEDS_MAXIMUM"
)

// Calculation results reported to the MetricsCollector
const (
	ResultCommitted   = "committed"
	ResultQuoted      = "quoted"
	ResultMissing     = "missing_input"
	ResultNegativeFee = "negative_fee"
	ResultOverCeiling = "over_ceiling"
)

// MetricsCollector receives pricing outcomes
type MetricsCollector interface {
	RecordPriceCalculation(ctx context.Context, result string, total values.Money)
}

// Service computes bid document prices and commits them onto bids
type Service struct {
	logger  *zap.Logger
	metrics MetricsCollector
}

// NewService creates a pricing service. Both arguments are optional.
func NewService(logger *zap.Logger, metrics MetricsCollector) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:  logger.Named("pricing"),
		metrics: metrics,
	}
}

// Quote computes the breakdown and applies the policy checks without touching any bid
func (s *Service) Quote(ctx context.Context, associationFee values.Money, gs *settings.GeneralSettings) (Breakdown, error) {
	if gs == nil {
		s.record(ctx, ResultMissing, values.Zero())
		return Breakdown{}, errors.NewNotFoundError("general settings")
	}

	breakdown := ComputeBreakdown(associationFee, gs)
	if err := s.checkBounds(ctx, breakdown, gs); err != nil {
		return Breakdown{}, err
	}

	s.record(ctx, ResultQuoted, breakdown.Total)
	return breakdown, nil
}

// CalculateAndUpdateBidPrices prices the bid documents and writes
// AssociationFees, TanafosFees and BidDocumentsPrice onto b. The total is
// always computed before the fee and ceiling checks; b is left untouched on failure.
func (s *Service) CalculateAndUpdateBidPrices(ctx context.Context, associationFee values.Money, gs *settings.GeneralSettings, b *bid.Bid) error {
	if b == nil {
		s.record(ctx, ResultMissing, values.Zero())
		return errors.NewNotFoundError("bid")
	}
	if gs == nil {
		s.record(ctx, ResultMissing, values.Zero())
		return errors.NewNotFoundError("general settings")
	}

	breakdown := ComputeBreakdown(associationFee, gs)
	if err := s.checkBounds(ctx, breakdown, gs); err != nil {
		s.logger.Debug("bid price rejected",
			zap.Stringer("bid_id", b.ID),
			zap.String("code", errors.CodeOf(err)))
		return err
	}

	b.ApplyPrices(breakdown.AssociationFee, breakdown.TanafosFee, breakdown.Total)

	s.logger.Info("bid prices updated",
		zap.Stringer("bid_id", b.ID),
		zap.Stringer("association_fees", breakdown.AssociationFee),
		zap.Stringer("tanafos_fees", breakdown.TanafosFee),
		zap.Stringer("vat", breakdown.VAT),
		zap.Stringer("bid_documents_price", breakdown.Total))

	s.record(ctx, ResultCommitted, breakdown.Total)
	return nil
}

func (s *Service) checkBounds(ctx context.Context, breakdown Breakdown, gs *settings.GeneralSettings) error {
	if breakdown.AssociationFee.IsNegative() {
		s.record(ctx, ResultNegativeFee, breakdown.Total)
		return errors.NewValidationError(CodeInvalidAssociationFees, "association fees must not be negative").
			WithDetails(map[string]interface{}{"association_fees": breakdown.AssociationFee.String()})
	}

	if ceiling := gs.MaxDocumentPrice(); breakdown.Total.GreaterThan(ceiling) {
		s.record(ctx, ResultOverCeiling, breakdown.Total)
		return errors.NewConflictErrorWithCode(CodePriceExceedsMaximum, "bid document price exceeds the allowed maximum").
			WithDetails(map[string]interface{}{
				"bid_documents_price":    breakdown.Total.String(),
				"max_bid_document_price": ceiling.String(),
			})
	}

	return nil
}

func (s *Service) record(ctx context.Context, result string, total values.Money) {
	if s.metrics != nil {
		s.metrics.RecordPriceCalculation(ctx, result, total)
	}
}

package bidrules

import (
	"context"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

// CandidateValidator checks and normalizes bid candidates
type CandidateValidator interface {
	ValidateCandidate(ctx context.Context, req *bid.AddressesRequest, existing *bid.Bid, gs *settings.GeneralSettings) error
	ValidateBidDatesWhileApproving(ctx context.Context, b *bid.Bid, gs *settings.GeneralSettings) error
}

// PriceCalculator commits bid document prices onto a bid
type PriceCalculator interface {
	CalculateAndUpdateBidPrices(ctx context.Context, associationFee values.Money, gs *settings.GeneralSettings, b *bid.Bid) error
}

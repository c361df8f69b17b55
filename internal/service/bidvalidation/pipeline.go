package bidvalidation

import (
	"context"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/validation"
)

// ValidateCandidate runs the full create/update pipeline on req:
// shape check, end-of-day adjustment, financial normalization, draft
// completeness, invitation attachments, then the date chain with the
// built-in back-dating predicate.
//
// req is normalized in place, so the caller must own it exclusively. On
// success it holds the values that may be copied onto the bid.
func (v *Validator) ValidateCandidate(
	ctx context.Context,
	req *bid.AddressesRequest,
	existing *bid.Bid,
	gs *settings.GeneralSettings,
) error {
	if req == nil {
		return v.fail(ctx, errors.NewNotFoundError("bid addresses request"))
	}
	if gs == nil {
		return v.fail(ctx, errors.NewNotFoundError("general settings"))
	}

	if err := validation.Struct(CodeInvalidRequest, req); err != nil {
		return v.fail(ctx, err)
	}

	if err := AdjustRequestBidAddressesToTheEndOfTheDay(req); err != nil {
		return v.fail(ctx, err)
	}
	ValidateBidFinancialValueWithBidType(req)

	if IsRequiredDataForNotSaveAsDraftAdded(req) {
		return v.fail(ctx, ruleError(CodeRequiredDataMissing))
	}
	if ValidateBidInvitationAttachmentsNew(req) {
		return v.fail(ctx, ruleError(CodeInvitationAttachmentsNeeded))
	}

	if err := v.candidateDateChain(ctx, req, existing, gs, v.CheckLastReceivingEnquiryDate); err != nil {
		return err
	}

	return v.pass(ctx, PathCandidate)
}

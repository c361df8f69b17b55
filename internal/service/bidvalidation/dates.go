package bidvalidation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
)

// PastDatePredicate reports whether a candidate moved the receiving-enquiries
// deadline of an existing bid to a date that has already passed.
type PastDatePredicate func(req *bid.AddressesRequest, existing *bid.Bid) bool

// ValidateBidDates runs the create/update date chain and returns the first
// violated rule. The back-dating rule only applies when existing is non-nil;
// a nil changedToPast never fires.
func (v *Validator) ValidateBidDates(
	ctx context.Context,
	req *bid.AddressesRequest,
	existing *bid.Bid,
	gs *settings.GeneralSettings,
	changedToPast PastDatePredicate,
) error {
	if req == nil {
		return v.fail(ctx, errors.NewNotFoundError("bid addresses request"))
	}
	if gs == nil {
		return v.fail(ctx, errors.NewNotFoundError("general settings"))
	}

	if err := v.candidateDateChain(ctx, req, existing, gs, changedToPast); err != nil {
		return err
	}

	return v.pass(ctx, PathCreateUpdate)
}

func (v *Validator) candidateDateChain(
	ctx context.Context,
	req *bid.AddressesRequest,
	existing *bid.Bid,
	gs *settings.GeneralSettings,
	changedToPast PastDatePredicate,
) error {
	if existing != nil && changedToPast != nil && changedToPast(req, existing) {
		return v.fail(ctx, ruleError(CodeReceivingEnquiriesBeforeToday), zap.Stringer("bid_id", existing.ID))
	}

	if err := checkDateOrder(req.Dates, gs.StoppingPeriodDays); err != nil {
		return v.fail(ctx, err)
	}

	return nil
}

// ValidateBidDatesWhileApproving runs the ordering rules against the persisted
// bid. There is no back-dating rule here: approval changes no dates.
func (v *Validator) ValidateBidDatesWhileApproving(ctx context.Context, b *bid.Bid, gs *settings.GeneralSettings) error {
	if b == nil {
		return v.fail(ctx, errors.NewNotFoundError("bid"))
	}
	if gs == nil {
		return v.fail(ctx, errors.NewNotFoundError("general settings"))
	}

	if err := checkDateOrder(b.Dates, gs.StoppingPeriodDays); err != nil {
		return v.fail(ctx, err, zap.Stringer("bid_id", b.ID))
	}

	return v.pass(ctx, PathApproval)
}

// CheckLastReceivingEnquiryDate is true when both dates are present, the
// candidate's date is strictly before now and it falls on a different
// calendar day than the existing one. An unchanged past date passes.
func (v *Validator) CheckLastReceivingEnquiryDate(req *bid.AddressesRequest, existing *bid.Bid) bool {
	if req == nil || existing == nil {
		return false
	}

	candidate := req.LastDateInReceivingEnquiries
	current := existing.LastDateInReceivingEnquiries
	if candidate == nil || current == nil {
		return false
	}

	return candidate.Before(v.now()) && !sameDay(*candidate, *current)
}

// checkDateOrder evaluates the ordering rules in precedence order.
// A comparison against an absent date never fails.
func checkDateOrder(d bid.Dates, stoppingPeriodDays int) error {
	switch {
	case after(d.LastDateInReceivingEnquiries, d.LastDateInOffersSubmission):
		return ruleError(CodeOffersSubmissionBeforeEnquiries)
	case after(d.LastDateInOffersSubmission, d.OffersOpeningDate):
		return ruleError(CodeOffersOpeningBeforeSubmission)
	case d.HasExpectedAnchoringDate() && d.OffersOpeningDate != nil &&
		d.OffersOpeningDate.AddDate(0, 0, stoppingPeriodDays).After(*d.ExpectedAnchoringDate):
		return ruleError(CodeAnchoringWithinStoppingPeriod)
	}
	return nil
}

func after(a, b *time.Time) bool {
	return a != nil && b != nil && a.After(*b)
}

// sameDay compares calendar days in a's location
func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

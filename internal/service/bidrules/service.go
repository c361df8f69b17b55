package bidrules

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
	"github.com/tanafos/bid-rules-core/internal/service/bidvalidation"
)

const CodeBidNotPendingApproval = "BID_NOT_PENDING_APPROVAL"

// Outcome describes what the caller still has to persist after PrepareBid
type Outcome struct {
	// AttachmentsToPersist is true when the invitation attachments of the
	// candidate must be stored alongside the bid.
	AttachmentsToPersist bool             `json:"attachments_to_persist"`
	Attachments          []bid.Attachment `json:"attachments,omitempty"`

	BidDocumentsPrice values.Money `json:"bid_documents_price"`
}

// Service runs the bid rules in the order a lifecycle orchestrator needs them
type Service struct {
	validator CandidateValidator
	pricing   PriceCalculator
	logger    *zap.Logger
}

// NewService wires the rules facade. logger may be nil.
func NewService(validator CandidateValidator, pricing PriceCalculator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		validator: validator,
		pricing:   pricing,
		logger:    logger.Named("bidrules"),
	}
}

// PrepareBid validates req against existing (nil on create), prices the bid
// documents onto target and copies the validated addresses onto target.
// target is only modified when every rule passes. req is normalized in place.
func (s *Service) PrepareBid(
	ctx context.Context,
	req *bid.AddressesRequest,
	existing *bid.Bid,
	associationFee values.Money,
	gs *settings.GeneralSettings,
	target *bid.Bid,
) (*Outcome, error) {
	if target == nil {
		return nil, errors.NewNotFoundError("bid")
	}

	if err := s.validator.ValidateCandidate(ctx, req, existing, gs); err != nil {
		return nil, err
	}

	if err := s.pricing.CalculateAndUpdateBidPrices(ctx, associationFee, gs, target); err != nil {
		return nil, err
	}

	target.ApplyAddresses(req)

	outcome := &Outcome{
		AttachmentsToPersist: bidvalidation.CheckIfWeNeedAddAttachmentNew(req),
		BidDocumentsPrice:    target.BidDocumentsPrice,
	}
	if outcome.AttachmentsToPersist {
		outcome.Attachments = append([]bid.Attachment(nil), req.InvitationAttachments...)
	}

	s.logger.Info("bid prepared",
		zap.Stringer("bid_id", target.ID),
		zap.Bool("draft", req.IsDraft),
		zap.Stringer("bid_type", target.BidType),
		zap.Int("attachments", len(outcome.Attachments)))

	return outcome, nil
}

// ApproveBid checks that b may move out of pending approval with its current
// schedule. It does not change the status.
func (s *Service) ApproveBid(ctx context.Context, b *bid.Bid, gs *settings.GeneralSettings) error {
	if b == nil {
		return errors.NewNotFoundError("bid")
	}

	if !b.TenderStatusID.CanBeApproved() {
		return errors.NewConflictErrorWithCode(CodeBidNotPendingApproval,
			fmt.Sprintf("bid in status %s cannot be approved", b.TenderStatusID.DisplayName())).
			WithDetails(map[string]interface{}{"tender_status": b.TenderStatusID.String()})
	}

	if err := s.validator.ValidateBidDatesWhileApproving(ctx, b, gs); err != nil {
		return err
	}

	s.logger.Info("bid cleared for approval", zap.Stringer("bid_id", b.ID))
	return nil
}

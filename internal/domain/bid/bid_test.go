package bid_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
	"github.com/tanafos/bid-rules-core/internal/testutil/fixtures"
)

func TestNewBid(t *testing.T) {
	b := bid.NewBid("TND-1", bid.VisibilityHabilitation)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, "TND-1", b.ReferenceNumber)
	assert.Equal(t, bid.StatusDraft, b.TenderStatusID)
	assert.Equal(t, bid.VisibilityHabilitation, b.BidType)
	assert.True(t, b.BidDocumentsPrice.IsZero())
	assert.Nil(t, b.LastDateInReceivingEnquiries)
	assert.NotZero(t, b.CreatedAt)
}

func TestBid_ApplyAndResetPrices(t *testing.T) {
	b := fixtures.NewBidBuilder().Build()
	before := b.UpdatedAt

	time.Sleep(time.Millisecond)
	b.ApplyPrices(values.NewMoneyFromInt(1000), values.NewMoneyFromInt(50), values.MustNewMoneyFromString("1207.5"))

	assert.Equal(t, "1000.00000000", b.AssociationFees.String())
	assert.Equal(t, "50.00000000", b.TanafosFees.String())
	assert.Equal(t, "1207.50000000", b.BidDocumentsPrice.String())
	assert.True(t, b.UpdatedAt.After(before))

	b.ResetPrices()
	assert.True(t, b.AssociationFees.IsZero())
	assert.True(t, b.TanafosFees.IsZero())
	assert.True(t, b.BidDocumentsPrice.IsZero())
}

func TestBid_ApplyAddressesDoesNotAliasRequest(t *testing.T) {
	b := fixtures.NewBidBuilder().WithDates(bid.Dates{}).Build()
	req := fixtures.NewRequestBuilder().
		WithBidType(bid.VisibilityPrivate).
		WithRegions(7, 8).
		Build()

	b.ApplyAddresses(req)

	require.NotNil(t, b.OffersOpeningDate)
	assert.True(t, b.OffersOpeningDate.Equal(*req.OffersOpeningDate))
	assert.Equal(t, bid.VisibilityPrivate, b.BidType)
	assert.Equal(t, []int{7, 8}, b.RegionIDs)

	*req.OffersOpeningDate = req.OffersOpeningDate.AddDate(1, 0, 0)
	req.RegionIDs[0] = 99
	assert.False(t, b.OffersOpeningDate.Equal(*req.OffersOpeningDate))
	assert.Equal(t, 7, b.RegionIDs[0])
}

func TestBid_ImplementsDeadlineDates(t *testing.T) {
	var _ bid.DeadlineDates = &bid.Bid{}
	var _ bid.DeadlineDates = &bid.AddressesRequest{}

	b := fixtures.NewBidBuilder().Build()
	dates := b.Deadlines()
	dates.ExpectedAnchoringDate = nil
	b.SetDeadlines(dates)

	assert.Nil(t, b.ExpectedAnchoringDate)
	assert.NotNil(t, b.OffersOpeningDate)
}

func TestDates_Predicates(t *testing.T) {
	full := fixtures.DefaultDates()
	assert.True(t, full.HasRequiredDates())
	assert.True(t, full.HasExpectedAnchoringDate())

	missing := full.Copy()
	missing.LastDateInOffersSubmission = nil
	assert.False(t, missing.HasRequiredDates())

	zeroAnchor := full.Copy()
	zeroAnchor.ExpectedAnchoringDate = bid.Date(time.Time{})
	assert.False(t, zeroAnchor.HasExpectedAnchoringDate())
}

func TestAddressesRequest_Clone(t *testing.T) {
	req := fixtures.NewRequestBuilder().
		NeedingAttachments(fixtures.NewAttachment(t, "invitation.pdf")).
		WithFinancialInsurance("2500").
		Build()

	clone := req.Clone()
	clone.RegionIDs[0] = 42
	clone.InvitationAttachments[0].FileName = "other.pdf"
	*clone.FinancialInsuranceValue = clone.FinancialInsuranceValue.Neg()
	*clone.LastDateInReceivingEnquiries = time.Time{}

	assert.Equal(t, 1, req.RegionIDs[0])
	assert.Equal(t, "invitation.pdf", req.InvitationAttachments[0].FileName)
	assert.Equal(t, "2500", req.FinancialInsuranceValue.String())
	assert.False(t, req.LastDateInReceivingEnquiries.IsZero())
	assert.True(t, req.HasAttachments())
}

func TestStatus_Names(t *testing.T) {
	tests := []struct {
		status  bid.Status
		name    string
		display string
	}{
		{bid.StatusDraft, "draft", "Draft"},
		{bid.StatusPendingApproval, "pending_approval", "Pending Approval"},
		{bid.StatusPublished, "published", "Published"},
		{bid.StatusClosed, "closed", "Closed"},
		{bid.StatusCancelled, "cancelled", "Cancelled"},
		{bid.StatusRejected, "rejected", "Rejected"},
		{bid.StatusUnspecified, "unspecified", bid.Unspecified},
		{bid.Status(99), "unspecified", bid.Unspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.display, tt.status.DisplayName())
		})
	}
}

func TestStatus_CanBeApproved(t *testing.T) {
	assert.True(t, bid.StatusPendingApproval.CanBeApproved())
	assert.False(t, bid.StatusDraft.CanBeApproved())
	assert.False(t, bid.StatusPublished.CanBeApproved())
}

func TestParseStatus(t *testing.T) {
	status, err := bid.ParseStatus(" Pending_Approval ")
	require.NoError(t, err)
	assert.Equal(t, bid.StatusPendingApproval, status)

	_, err = bid.ParseStatus("archived")
	assert.True(t, errors.HasCode(err, "INVALID_TENDER_STATUS"))
}

func TestVisibility_Names(t *testing.T) {
	assert.Equal(t, "Habilitation", bid.VisibilityHabilitation.DisplayName())
	assert.Equal(t, "public", bid.VisibilityPublic.String())
	assert.Equal(t, bid.Unspecified, bid.Visibility(-1).DisplayName())
	assert.Equal(t, "unspecified", bid.VisibilityUnspecified.String())

	assert.True(t, bid.VisibilityPublic.CarriesFinancialInsurance())
	assert.True(t, bid.VisibilityPrivate.CarriesFinancialInsurance())
	assert.False(t, bid.VisibilityHabilitation.CarriesFinancialInsurance())

	v, err := bid.ParseVisibility("PRIVATE")
	require.NoError(t, err)
	assert.Equal(t, bid.VisibilityPrivate, v)

	_, err = bid.ParseVisibility("secret")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

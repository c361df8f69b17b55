package fixtures

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

// Reference is the fixed instant default schedules are built from
var Reference = time.Date(2025, time.January, 1, 9, 30, 0, 0, time.UTC)

// Day returns midnight UTC of Reference plus n days
func Day(n int) time.Time {
	return time.Date(2025, time.January, 1+n, 0, 0, 0, 0, time.UTC)
}

// DefaultDates is a schedule that passes every date rule with a 5 day stopping period
func DefaultDates() bid.Dates {
	return bid.Dates{
		LastDateInReceivingEnquiries: bid.Date(Day(10).Add(23*time.Hour + 59*time.Minute + 59*time.Second)),
		LastDateInOffersSubmission:   bid.Date(Day(20).Add(23*time.Hour + 59*time.Minute + 59*time.Second)),
		OffersOpeningDate:            bid.Date(Day(21)),
		ExpectedAnchoringDate:        bid.Date(Day(30)),
	}
}

// BidBuilder builds test Bid entities
type BidBuilder struct {
	id        uuid.UUID
	reference string
	status    bid.Status
	bidType   bid.Visibility
	dates     bid.Dates
	regions   []int
	fees      values.Money
}

// NewBidBuilder creates a new BidBuilder with defaults
func NewBidBuilder() *BidBuilder {
	return &BidBuilder{
		id:        uuid.New(),
		reference: "TND-2025-0001",
		status:    bid.StatusDraft,
		bidType:   bid.VisibilityPublic,
		dates:     DefaultDates(),
		regions:   []int{1, 4},
		fees:      values.Zero(),
	}
}

func (b *BidBuilder) WithID(id uuid.UUID) *BidBuilder {
	b.id = id
	return b
}

// WithStatus sets the tender status
func (b *BidBuilder) WithStatus(status bid.Status) *BidBuilder {
	b.status = status
	return b
}

func (b *BidBuilder) WithBidType(bidType bid.Visibility) *BidBuilder {
	b.bidType = bidType
	return b
}

// WithDates replaces the whole schedule
func (b *BidBuilder) WithDates(dates bid.Dates) *BidBuilder {
	b.dates = dates
	return b
}

func (b *BidBuilder) WithReceivingEnquiries(t *time.Time) *BidBuilder {
	b.dates.LastDateInReceivingEnquiries = t
	return b
}

func (b *BidBuilder) WithAssociationFees(fees values.Money) *BidBuilder {
	b.fees = fees
	return b
}

// Build creates the Bid entity
func (b *BidBuilder) Build() *bid.Bid {
	now := time.Now().UTC()
	return &bid.Bid{
		ID:                b.id,
		ReferenceNumber:   b.reference,
		AssociationFees:   b.fees,
		TanafosFees:       values.Zero(),
		BidDocumentsPrice: values.Zero(),
		TenderStatusID:    b.status,
		BidType:           b.bidType,
		Dates:             b.dates.Copy(),
		RegionIDs:         append([]int(nil), b.regions...),
		SiteMapUpdatedAt:  now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// RequestBuilder builds candidate AddressesRequest models
type RequestBuilder struct {
	req bid.AddressesRequest
}

// NewRequestBuilder starts from a complete, non-draft public request
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{req: bid.AddressesRequest{
		Dates:     DefaultDates(),
		BidType:   bid.VisibilityPublic,
		RegionIDs: []int{1, 4},
	}}
}

func (b *RequestBuilder) WithDates(dates bid.Dates) *RequestBuilder {
	b.req.Dates = dates
	return b
}

func (b *RequestBuilder) WithReceivingEnquiries(t *time.Time) *RequestBuilder {
	b.req.LastDateInReceivingEnquiries = t
	return b
}

func (b *RequestBuilder) WithOffersSubmission(t *time.Time) *RequestBuilder {
	b.req.LastDateInOffersSubmission = t
	return b
}

func (b *RequestBuilder) WithOffersOpening(t *time.Time) *RequestBuilder {
	b.req.OffersOpeningDate = t
	return b
}

func (b *RequestBuilder) WithExpectedAnchoring(t *time.Time) *RequestBuilder {
	b.req.ExpectedAnchoringDate = t
	return b
}

func (b *RequestBuilder) AsDraft() *RequestBuilder {
	b.req.IsDraft = true
	return b
}

func (b *RequestBuilder) WithBidType(bidType bid.Visibility) *RequestBuilder {
	b.req.BidType = bidType
	return b
}

func (b *RequestBuilder) WithRegions(ids ...int) *RequestBuilder {
	b.req.RegionIDs = ids
	return b
}

// NeedingAttachments sets the invitation flag and the supplied attachments
func (b *RequestBuilder) NeedingAttachments(attachments ...bid.Attachment) *RequestBuilder {
	b.req.IsInvitationNeedAttachments = true
	b.req.InvitationAttachments = attachments
	return b
}

func (b *RequestBuilder) WithFinancialInsurance(value string) *RequestBuilder {
	v := decimal.RequireFromString(value)
	b.req.IsFinancialInsuranceRequired = true
	b.req.FinancialInsuranceValue = &v
	return b
}

func (b *RequestBuilder) Build() *bid.AddressesRequest {
	req := b.req.Clone()
	return &req
}

// NewAttachment returns an attachment with a fresh ID
func NewAttachment(t *testing.T, name string) bid.Attachment {
	t.Helper()
	return bid.Attachment{ID: uuid.New(), FileName: name}
}

// SettingsBuilder builds GeneralSettings snapshots
type SettingsBuilder struct {
	s settings.GeneralSettings
}

// NewSettingsBuilder defaults to 5% tanafos, 15% VAT, floor 10, ceiling 100000, 5 stopping days
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{s: settings.GeneralSettings{
		TanfasPercentage:            decimal.NewFromInt(5),
		VATPercentage:               decimal.NewFromInt(15),
		MinTanfasOfBidDocumentPrice: decimal.NewFromInt(10),
		MaxBidDocumentPrice:         decimal.NewFromInt(100000),
		StoppingPeriodDays:          5,
	}}
}

func (b *SettingsBuilder) WithTanfas(percent string) *SettingsBuilder {
	b.s.TanfasPercentage = decimal.RequireFromString(percent)
	return b
}

func (b *SettingsBuilder) WithVAT(percent string) *SettingsBuilder {
	b.s.VATPercentage = decimal.RequireFromString(percent)
	return b
}

func (b *SettingsBuilder) WithMinTanfas(amount string) *SettingsBuilder {
	b.s.MinTanfasOfBidDocumentPrice = decimal.RequireFromString(amount)
	return b
}

func (b *SettingsBuilder) WithMaxPrice(amount string) *SettingsBuilder {
	b.s.MaxBidDocumentPrice = decimal.RequireFromString(amount)
	return b
}

func (b *SettingsBuilder) WithStoppingPeriod(days int) *SettingsBuilder {
	b.s.StoppingPeriodDays = days
	return b
}

func (b *SettingsBuilder) Build() *settings.GeneralSettings {
	s := b.s
	return &s
}

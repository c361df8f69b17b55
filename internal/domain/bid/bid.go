package bid

import (
	"time"

	"github.com/google/uuid"

	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

// Bid is the tender aggregate. The rules core only reads its dates, status
// and visibility, and writes the three price fields.
type Bid struct {
	ID              uuid.UUID `json:"id"`
	ReferenceNumber string    `json:"reference_number"`

	// Pricing, computed by the pricing engine
	AssociationFees   values.Money `json:"association_fees"`
	TanafosFees       values.Money `json:"tanafos_fees"`
	BidDocumentsPrice values.Money `json:"bid_documents_price"`

	TenderStatusID Status     `json:"tender_status_id"`
	BidType        Visibility `json:"bid_type"`

	Dates

	RegionIDs   []int `json:"region_ids"`
	IndustryIDs []int `json:"industry_ids"`

	SiteMapUpdatedAt time.Time `json:"site_map_updated_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewBid(referenceNumber string, bidType Visibility) *Bid {
	now := time.Now()
	return &Bid{
		ID:                uuid.New(),
		ReferenceNumber:   referenceNumber,
		AssociationFees:   values.Zero(),
		TanafosFees:       values.Zero(),
		BidDocumentsPrice: values.Zero(),
		TenderStatusID:    StatusDraft,
		BidType:           bidType,
		SiteMapUpdatedAt:  now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ApplyPrices stores a computed price breakdown on the bid
func (b *Bid) ApplyPrices(associationFees, tanafosFees, documentsPrice values.Money) {
	b.AssociationFees = associationFees
	b.TanafosFees = tanafosFees
	b.BidDocumentsPrice = documentsPrice
	b.UpdatedAt = time.Now()
}

func (b *Bid) ResetPrices() {
	b.ApplyPrices(values.Zero(), values.Zero(), values.Zero())
}

// ApplyAddresses copies validated request fields onto the aggregate
func (b *Bid) ApplyAddresses(req *AddressesRequest) {
	b.SetDeadlines(req.Dates.Copy())
	b.BidType = req.BidType
	b.RegionIDs = append([]int(nil), req.RegionIDs...)

	now := time.Now()
	b.SiteMapUpdatedAt = now
	b.UpdatedAt = now
}

package bid

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attachment is an uploaded invitation document reference
type Attachment struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	FileName string    `json:"file_name" validate:"required"`
}

// AddressesRequest is the caller-supplied candidate for a bid create or update.
// It is owned by a single request and discarded after validation.
type AddressesRequest struct {
	Dates

	IsDraft bool       `json:"is_draft"`
	BidType Visibility `json:"bid_type" validate:"gte=1,lte=3"`

	IsInvitationNeedAttachments bool         `json:"is_invitation_need_attachments"`
	InvitationAttachments       []Attachment `json:"invitation_attachments" validate:"dive"`

	RegionIDs []int `json:"region_ids" validate:"dive,gt=0"`

	IsFinancialInsuranceRequired bool             `json:"is_financial_insurance_required"`
	FinancialInsuranceValue      *decimal.Decimal `json:"financial_insurance_value,omitempty" validate:"omitempty,gte=0"`
}

// Clone returns a deep copy so transforms never alias the caller's slices
func (r AddressesRequest) Clone() AddressesRequest {
	out := r
	out.InvitationAttachments = append([]Attachment(nil), r.InvitationAttachments...)
	out.RegionIDs = append([]int(nil), r.RegionIDs...)
	if r.FinancialInsuranceValue != nil {
		v := *r.FinancialInsuranceValue
		out.FinancialInsuranceValue = &v
	}
	out.Dates = r.Dates.Copy()
	return out
}

func (r *AddressesRequest) HasAttachments() bool {
	return len(r.InvitationAttachments) > 0
}

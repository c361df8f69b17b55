package bidvalidation

import (
	"github.com/tanafos/bid-rules-core/internal/domain/bid"
)

// IsRequiredDataForNotSaveAsDraftAdded is true when the candidate is still
// missing data required to leave draft: any of the three required dates or
// the region list. Drafts are never reported as incomplete.
func IsRequiredDataForNotSaveAsDraftAdded(req *bid.AddressesRequest) bool {
	if req == nil {
		return true
	}
	if req.IsDraft {
		return false
	}
	return !req.HasRequiredDates() || len(req.RegionIDs) == 0
}

// NormalizeFinancialValue returns a copy of req with the financial insurance
// terms cleared when the bid type does not carry them.
func NormalizeFinancialValue(req bid.AddressesRequest) bid.AddressesRequest {
	out := req.Clone()
	if !out.BidType.CarriesFinancialInsurance() {
		out.IsFinancialInsuranceRequired = false
		out.FinancialInsuranceValue = nil
	}
	return out
}

// ValidateBidFinancialValueWithBidType applies NormalizeFinancialValue in place.
// The caller must own req exclusively.
func ValidateBidFinancialValueWithBidType(req *bid.AddressesRequest) {
	if req == nil {
		return
	}
	*req = NormalizeFinancialValue(*req)
}

// ValidateBidInvitationAttachmentsNew is true when a habilitation bid needs
// invitation attachments but none were supplied.
func ValidateBidInvitationAttachmentsNew(req *bid.AddressesRequest) bool {
	return needsInvitationAttachments(req) && !req.HasAttachments()
}

// CheckIfWeNeedAddAttachmentNew is true when a habilitation bid needs
// invitation attachments and at least one was supplied, i.e. the caller
// should persist them.
func CheckIfWeNeedAddAttachmentNew(req *bid.AddressesRequest) bool {
	return needsInvitationAttachments(req) && req.HasAttachments()
}

func needsInvitationAttachments(req *bid.AddressesRequest) bool {
	return req != nil && req.BidType == bid.VisibilityHabilitation && req.IsInvitationNeedAttachments
}

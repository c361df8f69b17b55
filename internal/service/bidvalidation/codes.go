package bidvalidation

import (
	"github.com/tanafos/bid-rules-core/internal/domain/errors"
)

// Rule failure codes, in date-chain precedence order first
const (
	CodeReceivingEnquiriesBeforeToday   = "LAST_DATE_IN_RECEIVING_ENQUIRIES_MUST_NOT_BE_BEFORE_TODAY_DATE"
	CodeOffersSubmissionBeforeEnquiries = "LAST_DATE_IN_OFFERS_SUBMISSION_MUST_BE_GREATER_THAN_LAST_DATE_IN_RECEIVING_ENQUIRIES"
	CodeOffersOpeningBeforeSubmission   = "OFFERS_OPENING_DATE_MUST_BE_GREATER_THAN_LAST_DATE_IN_OFFERS_SUBMISSION"
	CodeAnchoringWithinStoppingPeriod   = "EXPECTED_ANCHORING_DATE_MUST_BE_GREATER_THAN_OFFERS_OPENING_DATE_PLUS_STOPPING_PERIOD"

	CodeInvalidRequest              = "INVALID_BID_REQUEST"
	CodeRequiredDataMissing         = "BID_REQUIRED_DATA_MISSING"
	CodeInvitationAttachmentsNeeded = "INVITATION_ATTACHMENTS_REQUIRED"
	CodeMissingAddressesModel       = "BID_ADDRESSES_MODEL_REQUIRED"
)

var ruleMessages = map[string]string{
	CodeReceivingEnquiriesBeforeToday:   "last date in receiving enquiries must not be before today",
	CodeOffersSubmissionBeforeEnquiries: "last date in offers submission must be after the last date in receiving enquiries",
	CodeOffersOpeningBeforeSubmission:   "offers opening date must be after the last date in offers submission",
	CodeAnchoringWithinStoppingPeriod:   "expected anchoring date must be after the offers opening date plus the stopping period",
	CodeRequiredDataMissing:             "dates and regions are required unless the bid is saved as draft",
	CodeInvitationAttachmentsNeeded:     "habilitation bids that need invitation attachments must supply at least one",
	CodeMissingAddressesModel:           "bid addresses model is required",
}

// ruleError returns a fresh InvalidInput error for a rule code
func ruleError(code string) *errors.AppError {
	return errors.NewValidationError(code, ruleMessages[code])
}

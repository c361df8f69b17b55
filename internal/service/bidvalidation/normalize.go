package bidvalidation

import (
	"reflect"
	"time"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
)

// EndOfDayDates moves the receiving-enquiries and offers-submission deadlines
// to 23:59:59 and the opening and anchoring dates to 00:00:00, each in its
// own location. Absent dates stay absent. Applying it twice changes nothing.
func EndOfDayDates(d bid.Dates) bid.Dates {
	return bid.Dates{
		LastDateInReceivingEnquiries: atClock(d.LastDateInReceivingEnquiries, 23, 59, 59),
		LastDateInOffersSubmission:   atClock(d.LastDateInOffersSubmission, 23, 59, 59),
		OffersOpeningDate:            atClock(d.OffersOpeningDate, 0, 0, 0),
		ExpectedAnchoringDate:        atClock(d.ExpectedAnchoringDate, 0, 0, 0),
	}
}

// AdjustRequestBidAddressesToTheEndOfTheDay applies EndOfDayDates to model in
// place. It must run before the date chain so same-day comparisons are stable.
func AdjustRequestBidAddressesToTheEndOfTheDay(model bid.DeadlineDates) error {
	if isNil(model) {
		return ruleError(CodeMissingAddressesModel)
	}
	model.SetDeadlines(EndOfDayDates(model.Deadlines()))
	return nil
}

func atClock(t *time.Time, hour, minute, sec int) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	adjusted := time.Date(y, m, d, hour, minute, sec, 0, t.Location())
	return &adjusted
}

func isNil(model bid.DeadlineDates) bool {
	if model == nil {
		return true
	}
	rv := reflect.ValueOf(model)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

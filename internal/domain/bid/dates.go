package bid

import "time"

// Dates holds the four temporal fields shared by the bid aggregate and the
// candidate request model. A nil pointer means the date was not supplied.
type Dates struct {
	LastDateInReceivingEnquiries *time.Time `json:"last_date_in_receiving_enquiries,omitempty"`
	LastDateInOffersSubmission   *time.Time `json:"last_date_in_offers_submission,omitempty"`
	OffersOpeningDate            *time.Time `json:"offers_opening_date,omitempty"`
	ExpectedAnchoringDate        *time.Time `json:"expected_anchoring_date,omitempty"`
}

// DeadlineDates is implemented by any model whose dates can be read and
// replaced as a unit, e.g. for end-of-day normalization.
type DeadlineDates interface {
	Deadlines() Dates
	SetDeadlines(Dates)
}

func (d *Dates) Deadlines() Dates {
	return *d
}

func (d *Dates) SetDeadlines(dates Dates) {
	*d = dates
}

// HasRequiredDates reports whether the three dates needed to leave draft are present
func (d Dates) HasRequiredDates() bool {
	return d.LastDateInReceivingEnquiries != nil &&
		d.LastDateInOffersSubmission != nil &&
		d.OffersOpeningDate != nil
}

// HasExpectedAnchoringDate is false for both an absent and a zero-valued date
func (d Dates) HasExpectedAnchoringDate() bool {
	return d.ExpectedAnchoringDate != nil && !d.ExpectedAnchoringDate.IsZero()
}

// Copy copies every date so the result shares no pointers with d
func (d Dates) Copy() Dates {
	return Dates{
		LastDateInReceivingEnquiries: copyTime(d.LastDateInReceivingEnquiries),
		LastDateInOffersSubmission:   copyTime(d.LastDateInOffersSubmission),
		OffersOpeningDate:            copyTime(d.OffersOpeningDate),
		ExpectedAnchoringDate:        copyTime(d.ExpectedAnchoringDate),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Date returns a pointer to a copy of t, for building Dates literals
func Date(t time.Time) *time.Time {
	return &t
}

package bid

import (
	"strings"

	"github.com/tanafos/bid-rules-core/internal/domain/errors"
)

// Unspecified is the display name returned for any value outside the known set
const Unspecified = "Unspecified"

// Status is the tender lifecycle state of a bid
type Status int

const (
	StatusUnspecified Status = iota
	StatusDraft
	StatusPendingApproval
	StatusPublished
	StatusClosed
	StatusCancelled
	StatusRejected
)

var (
	statusNames = map[Status]string{
		StatusDraft:           "draft",
		StatusPendingApproval: "pending_approval",
		StatusPublished:       "published",
		StatusClosed:          "closed",
		StatusCancelled:       "cancelled",
		StatusRejected:        "rejected",
	}

	statusDisplayNames = map[Status]string{
		StatusDraft:           "Draft",
		StatusPendingApproval: "Pending Approval",
		StatusPublished:       "Published",
		StatusClosed:          "Closed",
		StatusCancelled:       "Cancelled",
		StatusRejected:        "Rejected",
	}
)

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unspecified"
}

// DisplayName returns the user-facing name, or Unspecified for unknown values
func (s Status) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return Unspecified
}

// CanBeApproved reports whether the approval validation path applies
func (s Status) CanBeApproved() bool {
	return s == StatusPendingApproval
}

// ParseStatus parses a machine name such as "pending_approval"
func ParseStatus(name string) (Status, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return StatusUnspecified, errors.NewValidationError("INVALID_TENDER_STATUS", "unknown tender status: "+name)
}

// Visibility is the bid type controlling who may participate
type Visibility int

const (
	VisibilityUnspecified Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityHabilitation
)

var (
	visibilityNames = map[Visibility]string{
		VisibilityPublic:       "public",
		VisibilityPrivate:      "private",
		VisibilityHabilitation: "habilitation",
	}

	visibilityDisplayNames = map[Visibility]string{
		VisibilityPublic:       "Public",
		VisibilityPrivate:      "Private",
		VisibilityHabilitation: "Habilitation",
	}
)

func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}
	return "unspecified"
}

func (v Visibility) DisplayName() string {
	if name, ok := visibilityDisplayNames[v]; ok {
		return name
	}
	return Unspecified
}

// CarriesFinancialInsurance reports whether financial insurance terms apply to the bid type
func (v Visibility) CarriesFinancialInsurance() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

func ParseVisibility(name string) (Visibility, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for visibility, n := range visibilityNames {
		if n == name {
			return visibility, nil
		}
	}
	return VisibilityUnspecified, errors.NewValidationError("INVALID_BID_TYPE", "unknown bid type: "+name)
}

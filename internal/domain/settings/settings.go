package settings

import (
	"github.com/shopspring/decimal"

	"github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/validation"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

const CodeInvalidSettings = "INVALID_GENERAL_SETTINGS"

// GeneralSettings is the read-only platform policy snapshot consumed by the
// pricing engine and the date validator. Safe for concurrent readers.
type GeneralSettings struct {
	TanfasPercentage            decimal.Decimal `json:"tanfas_percentage" koanf:"tanfas_percentage" validate:"gte=0,lte=100"`
	VATPercentage               decimal.Decimal `json:"vat_percentage" koanf:"vat_percentage" validate:"gte=0,lte=100"`
	MinTanfasOfBidDocumentPrice decimal.Decimal `json:"min_tanfas_of_bid_document_price" koanf:"min_tanfas_of_bid_document_price" validate:"gte=0"`
	MaxBidDocumentPrice         decimal.Decimal `json:"max_bid_document_price" koanf:"max_bid_document_price" validate:"gte=0"`
	StoppingPeriodDays          int             `json:"stopping_period_days" koanf:"stopping_period_days" validate:"gte=0"`
}

// Validate checks the snapshot invariants: percentages within [0,100],
// non-negative amounts and a ceiling no lower than the floor.
func (s *GeneralSettings) Validate() error {
	if s == nil {
		return errors.NewNotFoundError("general settings")
	}

	if err := validation.Struct(CodeInvalidSettings, s); err != nil {
		return err
	}

	if s.MaxBidDocumentPrice.LessThan(s.MinTanfasOfBidDocumentPrice) {
		return errors.NewValidationError(CodeInvalidSettings,
			"max bid document price must not be lower than the minimum tanafos fee").
			WithDetails(map[string]interface{}{
				"fields": map[string][]string{
					"max_bid_document_price": {"Must be greater than or equal to min_tanfas_of_bid_document_price"},
				},
			})
	}

	return nil
}

// MinTanafosFee returns the fee floor as Money
func (s *GeneralSettings) MinTanafosFee() values.Money {
	return values.NewMoney(s.MinTanfasOfBidDocumentPrice)
}

// MaxDocumentPrice returns the price ceiling as Money
func (s *GeneralSettings) MaxDocumentPrice() values.Money {
	return values.NewMoney(s.MaxBidDocumentPrice)
}

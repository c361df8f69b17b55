package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
)

// Breakdown is every intermediate of a bid document price computation.
// All amounts are rounded to values.Precision.
type Breakdown struct {
	AssociationFee values.Money `json:"association_fee"`
	TanafosFee     values.Money `json:"tanafos_fee"`
	Subtotal       values.Money `json:"subtotal"`
	VAT            values.Money `json:"vat"`
	Total          values.Money `json:"total"`
}

// ComputeTanafosFee returns the platform fee: associationFee × percent / 100,
// rounded, then raised to minFee if lower.
func ComputeTanafosFee(associationFee values.Money, tanfasPercent decimal.Decimal, minFee values.Money) values.Money {
	fee := associationFee.Percent(tanfasPercent).RoundToPrecision()
	return fee.Max(minFee)
}

// ComputeVAT returns amount × vatPercent / 100, rounded
func ComputeVAT(amount values.Money, vatPercent decimal.Decimal) values.Money {
	return amount.Percent(vatPercent).RoundToPrecision()
}

// ComputeBreakdown prices a document without checking policy bounds
func ComputeBreakdown(associationFee values.Money, s *settings.GeneralSettings) Breakdown {
	tanafos := ComputeTanafosFee(associationFee, s.TanfasPercentage, s.MinTanafosFee())
	subtotal := associationFee.Add(tanafos).RoundToPrecision()
	tax := ComputeVAT(subtotal, s.VATPercentage)

	return Breakdown{
		AssociationFee: associationFee,
		TanafosFee:     tanafos,
		Subtotal:       subtotal,
		VAT:            tax,
		Total:          subtotal.Add(tax).RoundToPrecision(),
	}
}

// ComputeTotalDocumentPrice returns association fee + tanafos fee + VAT
func ComputeTotalDocumentPrice(associationFee values.Money, s *settings.GeneralSettings) values.Money {
	return ComputeBreakdown(associationFee, s).Total
}

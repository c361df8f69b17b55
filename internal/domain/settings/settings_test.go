package settings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanafos/bid-rules-core/internal/domain/errors"
)

func validSettings() GeneralSettings {
	return GeneralSettings{
		TanfasPercentage:            decimal.NewFromInt(5),
		VATPercentage:               decimal.NewFromInt(15),
		MinTanfasOfBidDocumentPrice: decimal.NewFromInt(10),
		MaxBidDocumentPrice:         decimal.NewFromInt(100000),
		StoppingPeriodDays:          5,
	}
}

func TestGeneralSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *GeneralSettings)
		wantField string
	}{
		{
			name:   "valid snapshot",
			mutate: func(s *GeneralSettings) {},
		},
		{
			name:   "zero everything is allowed",
			mutate: func(s *GeneralSettings) { *s = GeneralSettings{} },
		},
		{
			name:      "tanfas above hundred",
			mutate:    func(s *GeneralSettings) { s.TanfasPercentage = decimal.RequireFromString("100.5") },
			wantField: "tanfas_percentage",
		},
		{
			name:      "negative vat",
			mutate:    func(s *GeneralSettings) { s.VATPercentage = decimal.NewFromInt(-1) },
			wantField: "vat_percentage",
		},
		{
			name:      "negative stopping period",
			mutate:    func(s *GeneralSettings) { s.StoppingPeriodDays = -2 },
			wantField: "stopping_period_days",
		},
		{
			name: "ceiling below floor",
			mutate: func(s *GeneralSettings) {
				s.MinTanfasOfBidDocumentPrice = decimal.NewFromInt(50)
				s.MaxBidDocumentPrice = decimal.NewFromInt(49)
			},
			wantField: "max_bid_document_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
			assert.True(t, errors.HasCode(err, CodeInvalidSettings))

			appErr := err.(*errors.AppError)
			fields, ok := appErr.Details["fields"].(map[string][]string)
			require.True(t, ok)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestGeneralSettings_ValidateNil(t *testing.T) {
	var s *GeneralSettings
	err := s.Validate()
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestGeneralSettings_MoneyAccessors(t *testing.T) {
	s := validSettings()
	assert.Equal(t, "10.00000000", s.MinTanafosFee().String())
	assert.Equal(t, "100000.00000000", s.MaxDocumentPrice().String())
}

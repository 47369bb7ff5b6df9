package customs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScreenStrategicGoods(t *testing.T) {
	tests := []struct {
		name               string
		hsCode             string
		country            string
		wantStrategic      bool
		wantSanction       bool
		wantLevel          SanctionLevel
		wantRecommendation Recommendation
	}{
		{
			name:               "clean code to clean country",
			hsCode:             "392010",
			country:            "US",
			wantStrategic:      false,
			wantSanction:       false,
			wantLevel:          SanctionLevelNone,
			wantRecommendation: RecommendationProceed,
		},
		{
			name:               "strategic code to clean country",
			hsCode:             "847130",
			country:            "US",
			wantStrategic:      true,
			wantSanction:       false,
			wantLevel:          SanctionLevelNone,
			wantRecommendation: RecommendationLicenseRequired,
		},
		{
			name:               "strategic code to full embargo country",
			hsCode:             "847130",
			country:            "KP",
			wantStrategic:      true,
			wantSanction:       true,
			wantLevel:          SanctionLevelFullEmbargo,
			wantRecommendation: RecommendationProhibited,
		},
		{
			name:               "clean code to full embargo country still prohibited",
			hsCode:             "392010",
			country:            "KP",
			wantStrategic:      false,
			wantSanction:       true,
			wantLevel:          SanctionLevelFullEmbargo,
			wantRecommendation: RecommendationProhibited,
		},
		{
			name:               "clean code to license country",
			hsCode:             "392010",
			country:            "RU",
			wantStrategic:      false,
			wantSanction:       true,
			wantLevel:          SanctionLevelLicenseRequired,
			wantRecommendation: RecommendationLicenseRequired,
		},
		{
			name:               "ten-digit code matches on six-digit prefix",
			hsCode:             "8471300000",
			country:            "US",
			wantStrategic:      true,
			wantSanction:       false,
			wantLevel:          SanctionLevelNone,
			wantRecommendation: RecommendationLicenseRequired,
		},
		{
			name:               "short code never matches",
			hsCode:             "8471",
			country:            "US",
			wantStrategic:      false,
			wantSanction:       false,
			wantLevel:          SanctionLevelNone,
			wantRecommendation: RecommendationProceed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScreenStrategicGoods(tt.hsCode, tt.country)
			assert.Equal(t, tt.wantStrategic, result.StrategicMatch)
			assert.Equal(t, tt.wantSanction, result.SanctionMatch)
			assert.Equal(t, tt.wantLevel, result.SanctionLevel)
			assert.Equal(t, tt.wantRecommendation, result.Recommendation)
			assert.Equal(t, "local fallback", result.Provenance)
		})
	}
}

func TestNewExportDeclaration_EmbargoBlocked(t *testing.T) {
	screening := ScreenStrategicGoods("847130", "KP")
	_, err := NewExportDeclaration("고성능 서버", "847130", "KP",
		decimal.NewFromInt(100000), "USD", screening)
	assert.Error(t, err)
}

func TestNewExportDeclaration_CarriesScreening(t *testing.T) {
	screening := ScreenStrategicGoods("847130", "RU")
	ed, err := NewExportDeclaration("고성능 서버", "847130", "RU",
		decimal.NewFromInt(100000), "USD", screening)
	assert.NoError(t, err)
	assert.True(t, ed.StrategicMatch)
	assert.Equal(t, SanctionLevelLicenseRequired, ed.SanctionLevel)
	assert.Equal(t, RecommendationLicenseRequired, ed.Recommendation)
	assert.Equal(t, "local fallback", ed.ScreeningSource)
}

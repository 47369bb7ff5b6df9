package customs

// SanctionLevel classifies a destination country for export control
type SanctionLevel string

const (
	SanctionLevelNone            SanctionLevel = "NONE"
	SanctionLevelLicenseRequired SanctionLevel = "LICENSE_REQUIRED"
	SanctionLevelFullEmbargo     SanctionLevel = "FULL_EMBARGO"
)

// Recommendation is the screening outcome guidance
type Recommendation string

const (
	RecommendationProceed         Recommendation = "PROCEED"
	RecommendationLicenseRequired Recommendation = "LICENSE_REQUIRED"
	RecommendationProhibited      Recommendation = "EXPORT_PROHIBITED"
)

// ScreeningResult is the outcome of checking one HS code / destination pair.
// Provenance records whether the remote service or the local fallback
// tables produced it.
type ScreeningResult struct {
	HSCode          string         `json:"hs_code"`
	Country         string         `json:"country"`
	StrategicMatch  bool           `json:"strategic_match"`
	StrategicReason string         `json:"strategic_reason,omitempty"`
	SanctionMatch   bool           `json:"sanction_match"`
	SanctionLevel   SanctionLevel  `json:"sanction_level"`
	Recommendation  Recommendation `json:"recommendation"`
	Provenance      string         `json:"provenance"`
}

// strategicGoods maps 6-digit HS prefixes to the controlled category.
// Mirrors the strategic goods control list for dual-use items.
var strategicGoods = map[string]string{
	"847130": "고성능 컴퓨터 (전략물자 해당 가능)",
	"854231": "반도체 프로세서 (전략물자 해당 가능)",
	"854232": "메모리 반도체 (전략물자 해당 가능)",
	"880240": "항공기 (전략물자)",
	"930690": "군수품 (전략물자)",
}

// fullEmbargoCountries are destinations under comprehensive sanctions
var fullEmbargoCountries = map[string]bool{
	"KP": true,
}

// licenseRequiredCountries are destinations needing an export license
var licenseRequiredCountries = map[string]bool{
	"RU": true,
	"BY": true,
	"IR": true,
	"SY": true,
	"MM": true,
	"CU": true,
	"VE": true,
}

// ScreenStrategicGoods checks an HS code and destination against the local
// control list and sanction tables. A sanction hit dominates the strategic
// classification: a full embargo prohibits the export regardless of the HS
// match, and a license requirement outranks a bare strategic flag.
func ScreenStrategicGoods(hsCode, country string) ScreeningResult {
	result := ScreeningResult{
		HSCode:        hsCode,
		Country:       country,
		SanctionLevel: SanctionLevelNone,
		Provenance:    "local fallback",
	}

	if len(hsCode) >= 6 {
		if reason, ok := strategicGoods[hsCode[:6]]; ok {
			result.StrategicMatch = true
			result.StrategicReason = reason
		}
	}

	switch {
	case fullEmbargoCountries[country]:
		result.SanctionMatch = true
		result.SanctionLevel = SanctionLevelFullEmbargo
	case licenseRequiredCountries[country]:
		result.SanctionMatch = true
		result.SanctionLevel = SanctionLevelLicenseRequired
	}

	result.Recommendation = recommend(result)
	return result
}

func recommend(r ScreeningResult) Recommendation {
	switch {
	case r.SanctionLevel == SanctionLevelFullEmbargo:
		return RecommendationProhibited
	case r.SanctionLevel == SanctionLevelLicenseRequired:
		return RecommendationLicenseRequired
	case r.StrategicMatch:
		return RecommendationLicenseRequired
	default:
		return RecommendationProceed
	}
}

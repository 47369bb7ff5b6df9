package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	appcustoms "github.com/scm/backend/internal/application/customs"
	"github.com/scm/backend/internal/domain/customs"
)

// screeningSourceLabel is recorded as the provenance of remote verdicts
const screeningSourceLabel = "전략물자관리원 API"

// screeningResponse is the remote screening verdict
type screeningResponse struct {
	StrategicMatch  bool   `json:"strategic_match"`
	StrategicReason string `json:"strategic_reason"`
	SanctionMatch   bool   `json:"sanction_match"`
	SanctionLevel   string `json:"sanction_level"`
	Recommendation  string `json:"recommendation"`
}

// ScreeningClient checks HS code / destination pairs against the strategic
// goods management service
type ScreeningClient struct {
	endpoint   string
	httpClient *http.Client
	settings   SettingsStore
	logger     *zap.Logger
}

// NewScreeningClient creates a screening client against the given endpoint
func NewScreeningClient(endpoint string, timeout time.Duration, logger *zap.Logger) *ScreeningClient {
	return &ScreeningClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetSettingsStore attaches a store used to resolve the API key per request
func (c *ScreeningClient) SetSettingsStore(store SettingsStore) {
	c.settings = store
}

// Screen asks the remote service for a verdict. Any failure, including a
// verdict the client cannot map, is an error; the caller falls back to the
// local control tables.
func (c *ScreeningClient) Screen(ctx context.Context, hsCode, country string) (customs.ScreeningResult, error) {
	endpoint := fmt.Sprintf("%s?hsSgn=%s&cntyCd=%s",
		c.endpoint, url.QueryEscape(hsCode), url.QueryEscape(country))
	if key := resolveKey(ctx, c.settings, SettingScreeningAPIKey); key != "" {
		endpoint = appendQueryParam(endpoint, "crkyCn", key)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return customs.ScreeningResult{}, fmt.Errorf("building screening request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return customs.ScreeningResult{}, fmt.Errorf("screening lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return customs.ScreeningResult{}, fmt.Errorf("screening API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return customs.ScreeningResult{}, fmt.Errorf("reading screening response: %w", err)
	}

	var verdict screeningResponse
	if err := json.Unmarshal(body, &verdict); err != nil {
		return customs.ScreeningResult{}, fmt.Errorf("decoding screening response: %w", err)
	}

	level, err := mapSanctionLevel(verdict.SanctionLevel)
	if err != nil {
		return customs.ScreeningResult{}, err
	}
	recommendation, err := mapRecommendation(verdict.Recommendation)
	if err != nil {
		return customs.ScreeningResult{}, err
	}

	c.logger.Debug("screening verdict received",
		zap.String("hs_code", hsCode),
		zap.String("country", country),
		zap.String("recommendation", verdict.Recommendation))

	return customs.ScreeningResult{
		HSCode:          hsCode,
		Country:         country,
		StrategicMatch:  verdict.StrategicMatch,
		StrategicReason: verdict.StrategicReason,
		SanctionMatch:   verdict.SanctionMatch,
		SanctionLevel:   level,
		Recommendation:  recommendation,
		Provenance:      screeningSourceLabel,
	}, nil
}

func mapSanctionLevel(level string) (customs.SanctionLevel, error) {
	switch customs.SanctionLevel(level) {
	case customs.SanctionLevelNone, customs.SanctionLevelLicenseRequired, customs.SanctionLevelFullEmbargo:
		return customs.SanctionLevel(level), nil
	default:
		return "", fmt.Errorf("unknown sanction level %q", level)
	}
}

func mapRecommendation(recommendation string) (customs.Recommendation, error) {
	switch customs.Recommendation(recommendation) {
	case customs.RecommendationProceed, customs.RecommendationLicenseRequired, customs.RecommendationProhibited:
		return customs.Recommendation(recommendation), nil
	default:
		return "", fmt.Errorf("unknown recommendation %q", recommendation)
	}
}

// Ensure ScreeningClient implements appcustoms.ScreeningClient
var _ appcustoms.ScreeningClient = (*ScreeningClient)(nil)

package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appcustoms "github.com/scm/backend/internal/application/customs"
)

// maxResponseSize limits lookup response bodies to prevent memory exhaustion
const maxResponseSize = 4 * 1024 * 1024 // 4MB

// rateSourceLabel is recorded as the source of fetched quotes
const rateSourceLabel = "한국은행 API"

// rateRow is one quote in the rate API response. Currencies quoted per 100
// units carry a "(100)" suffix on the unit, e.g. "JPY(100)".
type rateRow struct {
	CurUnit  string `json:"cur_unit"`
	CurName  string `json:"cur_nm"`
	DealBasR string `json:"deal_bas_r"`
}

// RateClient fetches daily KRW quotes from the Bank of Korea rate API
type RateClient struct {
	endpoint   string
	httpClient *http.Client
	settings   SettingsStore
	logger     *zap.Logger
}

// NewRateClient creates a rate client against the given endpoint
func NewRateClient(endpoint string, timeout time.Duration, logger *zap.Logger) *RateClient {
	return &RateClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetSettingsStore attaches a store used to resolve the API key per request
func (c *RateClient) SetSettingsStore(store SettingsStore) {
	c.settings = store
}

// FetchRates pulls the current quotes. Rows that cannot be parsed are
// skipped, not fatal; the caller appends whatever arrived.
func (c *RateClient) FetchRates(ctx context.Context) ([]appcustoms.RateQuote, string, error) {
	endpoint := c.endpoint
	if key := resolveKey(ctx, c.settings, SettingRateAPIKey); key != "" {
		endpoint = appendQueryParam(endpoint, "authkey", key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, "", fmt.Errorf("reading rate response: %w", err)
	}

	var rows []rateRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, "", fmt.Errorf("decoding rate response: %w", err)
	}

	now := time.Now()
	quotes := make([]appcustoms.RateQuote, 0, len(rows))
	for _, row := range rows {
		quote, err := parseRateRow(row, now)
		if err != nil {
			c.logger.Warn("skipping unparseable rate row",
				zap.String("cur_unit", row.CurUnit), zap.Error(err))
			continue
		}
		quotes = append(quotes, quote)
	}

	return quotes, rateSourceLabel, nil
}

// parseRateRow converts one API row to a per-unit KRW quote
func parseRateRow(row rateRow, rateDate time.Time) (appcustoms.RateQuote, error) {
	currency := strings.TrimSpace(row.CurUnit)
	if currency == "" {
		return appcustoms.RateQuote{}, fmt.Errorf("empty currency unit")
	}

	// quotes like "JPY(100)" are per 100 units
	per := decimal.NewFromInt(1)
	if idx := strings.Index(currency, "("); idx > 0 {
		unit := strings.TrimSuffix(currency[idx+1:], ")")
		currency = currency[:idx]
		parsed, err := decimal.NewFromString(unit)
		if err != nil || !parsed.IsPositive() {
			return appcustoms.RateQuote{}, fmt.Errorf("bad unit multiplier %q", unit)
		}
		per = parsed
	}

	rate, err := decimal.NewFromString(strings.ReplaceAll(row.DealBasR, ",", ""))
	if err != nil {
		return appcustoms.RateQuote{}, fmt.Errorf("bad rate %q: %w", row.DealBasR, err)
	}

	return appcustoms.RateQuote{
		Currency:  currency,
		RateToKRW: rate.Div(per),
		RateDate:  rateDate,
	}, nil
}

// Ensure RateClient implements ExchangeRateClient
var _ appcustoms.ExchangeRateClient = (*RateClient)(nil)

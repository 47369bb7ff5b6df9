package lookup

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appcustoms "github.com/scm/backend/internal/application/customs"
	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// standardVATRate is applied when the tariff lookup carries no VAT figure
var standardVATRate = decimal.NewFromInt(10)

// tariffResponse is the UNIPASS tariff query response envelope
type tariffResponse struct {
	XMLName xml.Name     `xml:"trrtQryRtnVo"`
	Items   []tariffItem `xml:"trrtQryRsltVo"`
}

// tariffItem is one tariff line in the response
type tariffItem struct {
	HSCode      string `xml:"hsSgn"`
	Description string `xml:"korePrnm"`
	DutyRate    string `xml:"trrt"`
	Unit        string `xml:"qtyUnitCd"`
}

// TariffClient fetches tariff lines from the UNIPASS customs API
type TariffClient struct {
	endpoint   string
	httpClient *http.Client
	settings   SettingsStore
	logger     *zap.Logger
}

// NewTariffClient creates a tariff client against the given endpoint
func NewTariffClient(endpoint string, timeout time.Duration, logger *zap.Logger) *TariffClient {
	return &TariffClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetSettingsStore attaches a store used to resolve the API key per request
func (c *TariffClient) SetSettingsStore(store SettingsStore) {
	c.settings = store
}

// FetchTariff looks up the tariff line of an HS code. An HS code UNIPASS
// does not know maps to shared.ErrNotFound so callers can distinguish
// "no such code" from a lookup failure.
func (c *TariffClient) FetchTariff(ctx context.Context, hsCode string) (*customs.HSCode, error) {
	endpoint := fmt.Sprintf("%s?hsSgn=%s", c.endpoint, url.QueryEscape(hsCode))
	if key := resolveKey(ctx, c.settings, SettingTariffAPIKey); key != "" {
		endpoint = appendQueryParam(endpoint, "crkyCn", key)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building tariff request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tariff: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tariff API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading tariff response: %w", err)
	}

	var parsed tariffResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding tariff response: %w", err)
	}

	for _, item := range parsed.Items {
		if strings.TrimSpace(item.HSCode) != hsCode {
			continue
		}
		dutyRate, err := decimal.NewFromString(strings.TrimSpace(item.DutyRate))
		if err != nil {
			return nil, fmt.Errorf("bad duty rate %q: %w", item.DutyRate, err)
		}
		hs, err := customs.NewHSCode(hsCode, strings.TrimSpace(item.Description), dutyRate, standardVATRate, strings.TrimSpace(item.Unit))
		if err != nil {
			return nil, err
		}
		c.logger.Debug("tariff line fetched",
			zap.String("hs_code", hsCode),
			zap.String("duty_rate", dutyRate.String()))
		return hs, nil
	}

	return nil, shared.ErrNotFound
}

// Ensure TariffClient implements appcustoms.TariffClient
var _ appcustoms.TariffClient = (*TariffClient)(nil)

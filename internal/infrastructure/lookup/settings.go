package lookup

import (
	"context"
	"net/url"
	"strings"
)

// SettingsStore resolves runtime-updatable settings such as external API
// keys. Keys changed through the store take effect on the next request
// without a restart.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}

// Setting keys for the external lookup credentials
const (
	SettingRateAPIKey      = "lookup.rate_api_key"
	SettingTariffAPIKey    = "lookup.tariff_api_key"
	SettingScreeningAPIKey = "lookup.screening_api_key"
)

// resolveKey returns the stored API key, or "" when no store is configured
// or the key is absent. Lookup errors are swallowed so a broken settings
// table degrades to an unauthenticated request rather than a failed one.
func resolveKey(ctx context.Context, store SettingsStore, key string) string {
	if store == nil {
		return ""
	}
	value, err := store.Get(ctx, key)
	if err != nil {
		return ""
	}
	return value
}

// appendQueryParam adds one escaped query parameter to an endpoint URL
func appendQueryParam(endpoint, name, value string) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + name + "=" + url.QueryEscape(value)
}

package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRateClient_FetchRates(t *testing.T) {
	t.Run("parses quotes including per-100 units", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"cur_unit": "USD", "cur_nm": "미국 달러", "deal_bas_r": "1,350.50"},
				{"cur_unit": "JPY(100)", "cur_nm": "일본 옌", "deal_bas_r": "912.34"},
				{"cur_unit": "EUR", "cur_nm": "유로", "deal_bas_r": "1,450.25"}
			]`))
		}))
		defer server.Close()

		client := NewRateClient(server.URL, 2*time.Second, zap.NewNop())

		quotes, source, err := client.FetchRates(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "한국은행 API", source)
		require.Len(t, quotes, 3)

		assert.Equal(t, "USD", quotes[0].Currency)
		assert.True(t, quotes[0].RateToKRW.Equal(decimal.NewFromFloat(1350.5)))

		// per-100 quote converts to a per-unit rate
		assert.Equal(t, "JPY", quotes[1].Currency)
		assert.True(t, quotes[1].RateToKRW.Equal(decimal.NewFromFloat(9.1234)),
			"got %s", quotes[1].RateToKRW)

		assert.Equal(t, "EUR", quotes[2].Currency)
	})

	t.Run("skips unparseable rows", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[
				{"cur_unit": "USD", "cur_nm": "미국 달러", "deal_bas_r": "1,350.50"},
				{"cur_unit": "", "cur_nm": "", "deal_bas_r": ""},
				{"cur_unit": "EUR", "cur_nm": "유로", "deal_bas_r": "not-a-number"}
			]`))
		}))
		defer server.Close()

		client := NewRateClient(server.URL, 2*time.Second, zap.NewNop())

		quotes, _, err := client.FetchRates(context.Background())

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "USD", quotes[0].Currency)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewRateClient(server.URL, 2*time.Second, zap.NewNop())

		_, _, err := client.FetchRates(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		client := NewRateClient("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())

		_, _, err := client.FetchRates(context.Background())

		assert.Error(t, err)
	})
}

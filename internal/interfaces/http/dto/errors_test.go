package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{ErrCodeCreditLimitExceeded, http.StatusUnprocessableEntity},
		{ErrCodeRateUnavailable, http.StatusUnprocessableEntity},
		{ErrCodeExternalLookup, http.StatusBadGateway},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"ERR_SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeCreditLimitExceeded, NormalizeErrorCode("CREDIT_LIMIT_EXCEEDED"))
	assert.Equal(t, ErrCodeRateUnavailable, NormalizeErrorCode("RATE_UNAVAILABLE"))
	assert.Equal(t, ErrCodeExternalLookup, NormalizeErrorCode("EXTERNAL_LOOKUP"))

	// Already-normalized and unknown codes pass through
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
}

func TestListRequestToFilter(t *testing.T) {
	t.Run("empty request gets defaults", func(t *testing.T) {
		filter := ListRequest{}.ToFilter()

		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 20, filter.PageSize)
		assert.Equal(t, "created_at", filter.OrderBy)
		assert.Equal(t, "desc", filter.OrderDir)
	})

	t.Run("explicit values win", func(t *testing.T) {
		filter := ListRequest{
			Page:     3,
			PageSize: 50,
			OrderBy:  "item_code",
			OrderDir: "asc",
			Search:   "완제품",
		}.ToFilter()

		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		assert.Equal(t, "item_code", filter.OrderBy)
		assert.Equal(t, "asc", filter.OrderDir)
		assert.Equal(t, "완제품", filter.Search)
	})
}

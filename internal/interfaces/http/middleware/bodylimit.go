package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scm/backend/internal/interfaces/http/dto"
)

// DefaultMaxBodySize caps request bodies at 1 MiB, plenty for document payloads
const DefaultMaxBodySize int64 = 1 << 20

// BodyLimit rejects request bodies larger than maxBytes
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

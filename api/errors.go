package api

import (
	"errors"
	"net/http"

	"github.com/avdku/airport-service/internal/auth"
	"github.com/avdku/airport-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError translates domain errors into the API error taxonomy.
// Validation errors keep their field-level message; storage errors never
// leak their original text.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{ve.Field: ve.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBadRequest(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{field: message})
}

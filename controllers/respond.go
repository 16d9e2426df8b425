package controllers

import (
	"errors"
	"fmt"

	"aromi-agent-backend/middleware"
	"aromi-agent-backend/models"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, models.NewValidationError(fmt.Errorf("invalid request body: %w", err)))
		return false
	}
	return true
}

// respondError writes err as {"detail": ...}. Anything that is not an
// APIError is reported as an internal error.
func respondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		apiErr = models.NewInternalError(err)
	}

	logger := middleware.Logger(c)
	if apiErr.Kind == models.KindInternal {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Debug().Err(err).Msg("request rejected")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode(), models.ErrorResponse{Detail: apiErr.Message})
}

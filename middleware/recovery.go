package middleware

import (
	"fmt"
	"net/http"

	"aromi-agent-backend/models"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panicking handler into a 500 with the panic as detail.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		Logger(c).Error().Interface("panic", recovered).Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: fmt.Sprint(recovered),
		})
	})
}

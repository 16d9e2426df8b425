package controllers

import (
	"net/http"

	"aromi-agent-backend/models"
	"aromi-agent-backend/services"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	contentService *services.ContentService
}

func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// Generate handles POST /generate
func (cc *ContentController) Generate(c *gin.Context) {
	var body models.ContentBody
	if !bindJSON(c, &body) {
		return
	}
	req := body.Request()

	response, err := cc.contentService.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

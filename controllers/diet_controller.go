package controllers

import (
	"net/http"

	"aromi-agent-backend/models"
	"aromi-agent-backend/services"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	dietService *services.DietService
}

func NewDietController(dietService *services.DietService) *DietController {
	return &DietController{
		dietService: dietService,
	}
}

// DiseaseDiet handles POST /disease-diet
func (dc *DietController) DiseaseDiet(c *gin.Context) {
	var body models.DiseaseBody
	if !bindJSON(c, &body) {
		return
	}
	req := body.Request()

	response, err := dc.dietService.BuildPlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

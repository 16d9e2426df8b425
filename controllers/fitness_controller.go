package controllers

import (
	"net/http"

	"aromi-agent-backend/models"
	"aromi-agent-backend/services"

	"github.com/gin-gonic/gin"
)

type FitnessController struct {
	fitnessService *services.FitnessService
}

func NewFitnessController(fitnessService *services.FitnessService) *FitnessController {
	return &FitnessController{
		fitnessService: fitnessService,
	}
}

// FitnessPlan handles POST /fitness-plan
func (fc *FitnessController) FitnessPlan(c *gin.Context) {
	var body models.FitnessBody
	if !bindJSON(c, &body) {
		return
	}
	req := body.Request()

	response, err := fc.fitnessService.BuildPlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

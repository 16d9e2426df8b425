package controllers

import (
	"net/http"

	"aromi-agent-backend/models"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "AroMi AI Agent API"
	ServiceVersion = "1.0.0"
)

var documentedEndpoints = []string{
	"/health - Health check",
	"/generate - Content generation",
	"/fitness-plan - Fitness planning",
	"/disease-diet - Diet planning",
}

type SystemController struct{}

func NewSystemController() *SystemController {
	return &SystemController{}
}

// Health handles GET /health
func (sc *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Message: "AroMi AI backend is running successfully!",
	})
}

// Root handles GET /
func (sc *SystemController) Root(c *gin.Context) {
	endpoints := make([]string, len(documentedEndpoints))
	copy(endpoints, documentedEndpoints)

	c.JSON(http.StatusOK, models.RootResponse{
		Message:   "Welcome to " + ServiceName,
		Version:   ServiceVersion,
		Endpoints: endpoints,
	})
}

// NotFound answers unknown routes.
func (sc *SystemController) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (sc *SystemController) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Detail: "Method Not Allowed"})
}

package routes

import (
	"fmt"

	"aromi-agent-backend/config"
	"aromi-agent-backend/controllers"
	"aromi-agent-backend/knowledge"
	"aromi-agent-backend/middleware"
	"aromi-agent-backend/services"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	assistantService, err := services.NewAssistantService(knowledge.Default(), cfg.Content.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Security.AllowedOrigins))

	SetupRoutes(router, assistantService)
	return router, nil
}

func SetupRoutes(router *gin.Engine, assistantService *services.AssistantService) {
	// Initialize controllers
	systemController := controllers.NewSystemController()
	contentController := controllers.NewContentController(assistantService.Content)
	fitnessController := controllers.NewFitnessController(assistantService.Fitness)
	dietController := controllers.NewDietController(assistantService.Diet)
	wsController := controllers.NewWebSocketController(assistantService)

	router.GET("/", systemController.Root)
	router.GET("/health", systemController.Health)

	router.POST("/generate", contentController.Generate)
	router.POST("/fitness-plan", fitnessController.FitnessPlan)
	router.POST("/disease-diet", dietController.DiseaseDiet)

	// Same operations multiplexed over one connection
	router.GET("/ws", wsController.HandleWebSocket)

	router.HandleMethodNotAllowed = true
	router.NoMethod(systemController.MethodNotAllowed)
	router.NoRoute(systemController.NotFound)
}

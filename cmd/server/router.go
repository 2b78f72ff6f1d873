package main

import (
	"net/http"

	"transparencyhub/config"
	"transparencyhub/controllers"
	"transparencyhub/middlewares"
	"transparencyhub/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// setupRouter wires middleware and routes. products may be nil, in which
// case the catalog endpoints are not mounted.
func setupRouter(cfg *config.Config, log zerolog.Logger, products *controllers.ProductController) (*gin.Engine, error) {
	router := gin.New()

	// Set trusted proxies (adjust as needed)
	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		return nil, err
	}

	corsHandler, err := middlewares.CORS(cfg.CORS)
	if err != nil {
		return nil, err
	}

	router.Use(middlewares.Recovery(log))
	router.Use(middlewares.RequestLogger(log))
	router.Use(corsHandler)

	router.GET("/", routes.HealthCheckRouteHandler)
	router.POST("/generate-questions", routes.GenerateQuestionsRouteHandler)
	router.POST("/transparency-score", routes.TransparencyScoreRouteHandler)

	if products != nil {
		routes.SetupProductRoutes(router, products)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router, nil
}

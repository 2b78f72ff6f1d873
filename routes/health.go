package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const HealthMessage = "AI/ML microservice is running!"

// HealthCheckRouteHandler reports that the service is up
func HealthCheckRouteHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": HealthMessage})
}

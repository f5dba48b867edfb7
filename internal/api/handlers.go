package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "v1.0.0"

// Root returns API metadata
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Diet Plan & Nutrition API",
		"version": apiVersion,
		"endpoints": gin.H{
			"/generate_diet_plan":  "POST - Generate personalized diet plan",
			"/nutrition_breakdown": "POST - Analyze food nutrition",
			"/health":              "GET - Health check",
		},
	})
}

// HealthCheck returns the health status of the API
func HealthCheck(apiKeyConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":             "healthy",
			"api_key_configured": apiKeyConfigured,
		})
	}
}

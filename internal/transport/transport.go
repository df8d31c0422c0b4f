package transport

import (
	"github.com/gin-gonic/gin"
)

func InitRoutes(assetHandler *AssetHandler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/generate", assetHandler.Generate)
	router.GET("/batch/:id", assetHandler.GetBatch)
	router.GET("/asset/:id", assetHandler.GetAsset)
	router.DELETE("/batch/:id", assetHandler.DeleteBatch)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "asset-generator-service",
		})
	})
	return router
}

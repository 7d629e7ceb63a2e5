package transport

import (
	"github.com/ds124wfegd/roundimage/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(imgHandler *ImageHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

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

	router.POST("/round", imgHandler.RoundImage)
	router.GET("/image/:id", imgHandler.GetImage)
	router.GET("/image/:id/info", imgHandler.GetImageInfo)
	router.DELETE("/image/:id", imgHandler.DeleteImage)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "roundimage",
		})
	})
	return router
}

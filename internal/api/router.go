package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"parking_mcp/internal/api/handler"
	"parking_mcp/internal/mcp"
	"parking_mcp/internal/service"
)

func SetupRouter(ps service.ParkingService, toolServer *mcp.ParkingToolServer, baseURL string, logger *slog.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	parkingH := handler.NewParkingHandler(ps, logger)
	parkingRoutes := r.Group("/parking")
	{
		parkingRoutes.POST("/nearby", parkingH.FindNearby)
		parkingRoutes.POST("/info", parkingH.GetInfo)
	}

	// MCP toolset 與 HTTP 端點綁在同一個 port
	if toolServer != nil {
		sse := toolServer.SSEHandler(baseURL)
		r.Any(mcp.BasePath+"/*path", gin.WrapH(sse))
	}

	return r
}

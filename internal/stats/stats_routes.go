package stats

import (
	"github.com/rishithakoppaka/employee-management-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	statsGroup := r.Group("/stats")
	statsGroup.Use(middleware.RateLimitByIP(10, 20))
	{
		statsGroup.GET("/median-age", handler.MedianAge)
		statsGroup.GET("/median-salary", handler.MedianSalary)
	}
}

package employee

import (
	"github.com/rishithakoppaka/employee-management-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	r.GET("/employees",
		middleware.RateLimitByIP(10, 20),
		handler.GetAll,
	)

	r.POST("/employee",
		middleware.RateLimitByIP(2, 5),
		middleware.Idempotency(rdb),
		handler.Create,
	)

	r.DELETE("/employee/:id",
		middleware.RateLimitByIP(2, 5),
		handler.Delete,
	)
}

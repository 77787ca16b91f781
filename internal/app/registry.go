package app

import (
	"database/sql"
	"net/http"

	"github.com/rishithakoppaka/employee-management-system/internal/employee"
	"github.com/rishithakoppaka/employee-management-system/internal/middleware"
	"github.com/rishithakoppaka/employee-management-system/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	statsRepo := stats.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	statsService := stats.NewService(statsRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb)
	statsHandler := stats.NewHandler(statsService)

	// --- Routes Registration ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Employee Management API",
			"version": apiVersion,
		})
	})

	api := router.Group("")
	api.Use(middleware.RequestID())
	api.Use(middleware.ContextLogger(zap.L()))
	{
		employee.RegisterRoutes(api, employeeHandler, rdb)
		stats.RegisterRoutes(api, statsHandler)
	}

	return nil
}

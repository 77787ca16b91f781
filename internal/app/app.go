package app

import (
	"context"
	"log"
	"os"

	"github.com/rishithakoppaka/employee-management-system/internal/employee"
	"github.com/rishithakoppaka/employee-management-system/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	// 2. Ensure Schema
	if err := employee.NewRepository(gormDB).EnsureSchema(context.Background()); err != nil {
		return err
	}
	log.Println("✅ Database schema ensured")

	// 3. Register Modules & Routes
	return registerModules(router, db, gormDB, redisClient)
}

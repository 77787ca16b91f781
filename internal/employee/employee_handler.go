package employee

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rishithakoppaka/employee-management-system/internal/middleware"
	"github.com/rishithakoppaka/employee-management-system/internal/shared/apperror"
	"github.com/rishithakoppaka/employee-management-system/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.releaseIdempotencyLock(c)
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotentResult(c, resp)
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get all employees")

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	rawID := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", rawID))

	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, apperror.CodeInvalidInput, "Invalid employee ID", nil)
		return
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, DeleteEmployeeResponse{
		Message: fmt.Sprintf("Employee with ID %d deleted successfully", id),
		Deleted: true,
	})
}

// storeIdempotentResult menyimpan hasil sukses ke replay cache dan melepas lock.
// No-op bila middleware idempotency tidak terpasang.
func (h *Handler) storeIdempotentResult(c *gin.Context, resp EmployeeResponse) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err(); err != nil {
			h.logger.Error("store idempotent result failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	if lockKey != "" {
		if err := h.rdb.Del(c.Request.Context(), lockKey).Err(); err != nil {
			h.logger.Error("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	if lockKey == "" {
		return
	}
	if err := h.rdb.Del(c.Request.Context(), lockKey).Err(); err != nil {
		h.logger.Error("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
	}
}

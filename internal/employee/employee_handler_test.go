package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rishithakoppaka/employee-management-system/internal/employee"
	employeeerrors "github.com/rishithakoppaka/employee-management-system/internal/employee/errors"
	"github.com/rishithakoppaka/employee-management-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	DeleteFn func(ctx context.Context, id uint) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func newTestContext(t *testing.T) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return w, c
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				assert.Equal(t, 35, req.Age)
				return employee.EmployeeResponse{
					ID:         1,
					Name:       req.Name,
					Age:        req.Age,
					Salary:     req.Salary,
					Department: req.Department,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		body := `{"name":"John Doe","age":35,"salary":60000,"department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
		assert.Contains(t, w.Body.String(), `"id":1`)
	})

	t.Run("validation error - each invalid field independently", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"empty name", `{"name":"","age":30,"salary":50000,"department":"Sales"}`},
			{"age zero", `{"name":"A","age":0,"salary":50000,"department":"Sales"}`},
			{"age negative", `{"name":"A","age":-5,"salary":50000,"department":"Sales"}`},
			{"age above 150", `{"name":"A","age":151,"salary":50000,"department":"Sales"}`},
			{"salary zero", `{"name":"A","age":30,"salary":0,"department":"Sales"}`},
			{"salary negative", `{"name":"A","age":30,"salary":-1,"department":"Sales"}`},
			{"empty department", `{"name":"A","age":30,"salary":50000,"department":""}`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// Service tidak boleh terpanggil saat validasi gagal
				svc := &fakeEmployeeService{
					CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
						t.Fatal("service must not be called with invalid input")
						return employee.EmployeeResponse{}, nil
					},
				}
				h := employee.NewHandler(svc)
				w, c := newTestContext(t)

				req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
				c.Request = req

				h.Create(c)

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
				assert.Contains(t, w.Body.String(), "INVALID_INPUT")
			})
		}
	})

	t.Run("success with idempotency - stores replay cache and releases lock", func(t *testing.T) {
		resp := employee.EmployeeResponse{
			ID:         1,
			Name:       "John Doe",
			Age:        35,
			Salary:     60000,
			Department: "Engineering",
		}
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return resp, nil
			},
		}

		rdb, redisMock := redismock.NewClientMock()
		h := employee.NewHandlerWithRedis(svc, rdb)
		w, c := newTestContext(t)

		body := `{"name":"John Doe","age":35,"salary":60000,"department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		// Simulasi middleware idempotency yang sudah memasang key
		cacheKey := "idemp:/employee:127.0.0.1:abc"
		lockKey := cacheKey + ":lock"
		c.Set(middleware.IdempotencyCacheKey, cacheKey)
		c.Set(middleware.IdempotencyLockKey, lockKey)

		payload, err := json.Marshal(resp)
		assert.NoError(t, err)
		redisMock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		redisMock.ExpectDel(lockKey).SetVal(1)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("storage error - sanitized 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("pq: connection refused")
			},
		}
		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		body := `{"name":"A","age":30,"salary":50000,"department":"Sales"}`
		req := httptest.NewRequest(http.MethodPost, "/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An unexpected error occurred")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("success - empty list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{}, nil
			},
		}
		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("success - with records", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{ID: 1, Name: "A", Age: 20, Salary: 1000, Department: "X"},
					{ID: 2, Name: "B", Age: 30, Salary: 2000, Department: "Y"},
				}, nil
			},
		}
		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
		assert.Contains(t, w.Body.String(), `"id":2`)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(7), id)
				return nil
			},
		}
		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		c.Request = httptest.NewRequest(http.MethodDelete, "/employee/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
		assert.Contains(t, w.Body.String(), "deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return employeeerrors.EmployeeNotFoundByID(id)
			},
		}
		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		c.Request = httptest.NewRequest(http.MethodDelete, "/employee/9999", nil)
		c.Params = gin.Params{{Key: "id", Value: "9999"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with ID 9999 not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error {
				t.Fatal("service must not be called with invalid id")
				return nil
			},
		}
		h := employee.NewHandler(svc)
		w, c := newTestContext(t)

		c.Request = httptest.NewRequest(http.MethodDelete, "/employee/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.Delete(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})
}

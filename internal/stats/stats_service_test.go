package stats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rishithakoppaka/employee-management-system/internal/shared/apperror"
	"github.com/rishithakoppaka/employee-management-system/internal/stats"
	statsMock "github.com/rishithakoppaka/employee-management-system/internal/stats/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupStatsService(t *testing.T) (stats.Service, *statsMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := statsMock.NewMockRepository(ctrl)
	return stats.NewService(repo), repo
}

func TestStatsService_MedianAge(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupStatsService(t)

		repo.EXPECT().
			MedianAge(ctx).
			Return(ptr(30), nil)

		resp, err := svc.MedianAge(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp.MedianValue)
		assert.Equal(t, 30.0, *resp.MedianValue)
		assert.Equal(t, "Median age: 30.00", resp.Message)
	})

	t.Run("empty store - no value", func(t *testing.T) {
		svc, repo := setupStatsService(t)

		repo.EXPECT().
			MedianAge(ctx).
			Return(nil, nil)

		resp, err := svc.MedianAge(ctx)

		assert.NoError(t, err)
		assert.Nil(t, resp.MedianValue)
		assert.Equal(t, "No employees found to calculate median age", resp.Message)
	})

	t.Run("storage failure - maps to internal error", func(t *testing.T) {
		svc, repo := setupStatsService(t)

		repo.EXPECT().
			MedianAge(ctx).
			Return(nil, errors.New("connection refused"))

		_, err := svc.MedianAge(ctx)

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

func TestStatsService_MedianSalary(t *testing.T) {
	ctx := context.Background()

	t.Run("success - even count interpolated by storage", func(t *testing.T) {
		svc, repo := setupStatsService(t)

		// [50000, 60000, 70000, 80000] -> 65000.0 lewat PERCENTILE_CONT;
		// harus sama dengan stats.Median di memory
		expected := stats.Median([]float64{50000, 60000, 70000, 80000})

		repo.EXPECT().
			MedianSalary(ctx).
			Return(expected, nil)

		resp, err := svc.MedianSalary(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp.MedianValue)
		assert.Equal(t, 65000.0, *resp.MedianValue)
		assert.Equal(t, "Median salary: $65000.00", resp.Message)
	})

	t.Run("empty store - no value", func(t *testing.T) {
		svc, repo := setupStatsService(t)

		repo.EXPECT().
			MedianSalary(ctx).
			Return(nil, nil)

		resp, err := svc.MedianSalary(ctx)

		assert.NoError(t, err)
		assert.Nil(t, resp.MedianValue)
		assert.Equal(t, "No employees found to calculate median salary", resp.Message)
	})

	t.Run("storage failure - maps to internal error", func(t *testing.T) {
		svc, repo := setupStatsService(t)

		repo.EXPECT().
			MedianSalary(ctx).
			Return(nil, errors.New("broken pipe"))

		_, err := svc.MedianSalary(ctx)

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

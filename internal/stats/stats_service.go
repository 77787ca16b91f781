package stats

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rishithakoppaka/employee-management-system/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=stats_service.go -destination=mock/stats_service_mock.go -package=mock
type Service interface {
	MedianAge(ctx context.Context) (StatsResponse, error)
	MedianSalary(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) MedianAge(ctx context.Context) (StatsResponse, error) {
	// Singleflight: query identik yang datang bersamaan cukup jalan sekali
	v, err, _ := s.sf.Do("median_age", func() (interface{}, error) {
		return s.repo.MedianAge(ctx)
	})
	if err != nil {
		s.logger.Error("median age query failed", zap.Error(err))
		return StatsResponse{}, mapStorageError(err)
	}

	median := v.(*float64)
	if median == nil {
		return StatsResponse{
			MedianValue: nil,
			Message:     "No employees found to calculate median age",
		}, nil
	}

	s.logger.Debug("median age computed", zap.Float64("median", *median))
	return StatsResponse{
		MedianValue: median,
		Message:     fmt.Sprintf("Median age: %.2f", *median),
	}, nil
}

func (s *service) MedianSalary(ctx context.Context) (StatsResponse, error) {
	v, err, _ := s.sf.Do("median_salary", func() (interface{}, error) {
		return s.repo.MedianSalary(ctx)
	})
	if err != nil {
		s.logger.Error("median salary query failed", zap.Error(err))
		return StatsResponse{}, mapStorageError(err)
	}

	median := v.(*float64)
	if median == nil {
		return StatsResponse{
			MedianValue: nil,
			Message:     "No employees found to calculate median salary",
		}, nil
	}

	s.logger.Debug("median salary computed", zap.Float64("median", *median))
	return StatsResponse{
		MedianValue: median,
		Message:     fmt.Sprintf("Median salary: $%.2f", *median),
	}, nil
}

func mapStorageError(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"Failed to compute statistics",
		http.StatusInternalServerError,
	)
}

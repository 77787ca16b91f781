package employee

import (
	"errors"
	"net/http"

	employeeerrors "github.com/rishithakoppaka/employee-management-system/internal/employee/errors"
	"github.com/rishithakoppaka/employee-management-system/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// Constraint/connectivity failure = storage error. Penyebab asli ikut
	// dibungkus supaya bisa dilog, pesan keluar tetap generik.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Wrap(
			err,
			apperror.CodeInternalError,
			"Failed to access employee storage",
			http.StatusInternalServerError,
		)
	}

	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}

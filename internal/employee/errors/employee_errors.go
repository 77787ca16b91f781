package employeeerrors

import (
	"fmt"
	"net/http"

	"github.com/rishithakoppaka/employee-management-system/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusUnprocessableEntity,
	)
	ErrStorageFailure = apperror.New(
		apperror.CodeInternalError,
		"Failed to access employee storage",
		http.StatusInternalServerError,
	)
)

// EmployeeNotFoundByID membuat error 404 dengan ID di pesannya
func EmployeeNotFoundByID(id uint) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Employee with ID %d not found", id),
		http.StatusNotFound,
	)
}

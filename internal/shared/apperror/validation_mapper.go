package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (median_value -> median value)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (median value -> Median Value)
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError menerjemahkan error validator menjadi satu AppError
// dengan daftar seluruh field yang gagal di Details.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusUnprocessableEntity,
		)
	}

	details := make([]string, 0, len(errs))
	for _, e := range errs {
		details = append(details, describeViolation(e))
	}

	// Pesan utama diambil dari error pertama
	first := errs[0]
	field := formatFieldName(first.Field())

	var appErr *AppError
	switch first.Tag() {
	case "required":
		appErr = RequiredField(field)
	case "gt", "gte", "lt", "lte", "min", "max":
		appErr = FieldOutOfRange(field, first.Tag()+" "+first.Param())
	default:
		appErr = InvalidField(field)
	}

	return appErr.WithDetails(details)
}

func describeViolation(e validator.FieldError) string {
	field := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + e.Param()
	case "gte":
		return field + " must be at least " + e.Param()
	case "lte":
		return field + " must be at most " + e.Param()
	case "min":
		return field + " must have length at least " + e.Param()
	case "max":
		return field + " must have length at most " + e.Param()
	default:
		return field + " is invalid"
	}
}

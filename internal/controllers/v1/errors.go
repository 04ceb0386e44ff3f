package v1

import (
	"errors"
	"net/http"

	"github.com/finance-center/backend/internal/importer/parser/bankbook"
	"github.com/finance-center/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no department matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, bankbook.ErrFileNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

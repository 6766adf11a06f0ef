package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"shop/internal/logger"
	repo "shop/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

const (
	msgRecordNotFound = "Record not found"
	msgReferenced     = "Cannot delete this record as it is referenced by other records"
	msgDBError        = "db error"
)

// repositoryのエラーをHTTPErrorにする。
// 想定外のエラーはログに出して500
func storeError(log *slog.Logger, op string, err error) error {
	if he, ok := AsHTTPError(err); ok {
		return he
	}
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, msgRecordNotFound)
	case errors.Is(err, repo.ErrDuplicate), errors.Is(err, repo.ErrForeignKey):
		return NewHTTPError(http.StatusConflict, "Integrity error: "+err.Error())
	case errors.Is(err, repo.ErrConstraint):
		return NewHTTPError(http.StatusUnprocessableEntity, "Integrity error: "+err.Error())
	case errors.Is(err, repo.ErrInvalidData):
		return NewHTTPError(http.StatusUnprocessableEntity, "Data error: "+err.Error())
	}
	log.Error("store error", slog.String("op", op), logger.Err(err))
	return NewHTTPError(http.StatusInternalServerError, msgDBError)
}

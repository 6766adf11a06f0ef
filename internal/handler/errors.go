package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shop/internal/logger"
	"shop/internal/middleware"
	"shop/internal/usecase"
	"shop/internal/validator"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	middleware.LoggerFrom(c, slog.Default()).Error("unhandled error", logger.Err(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// JSONが読めなければ400、タグ違反は422
func bindAndValidate(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(v); err != nil {
		return usecase.NewHTTPError(http.StatusUnprocessableEntity, validator.Message(err))
	}
	return nil
}

func paramInt64(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func queryInt64(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, usecase.NewHTTPError(http.StatusUnprocessableEntity, name+" is required")
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, usecase.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func queryRequired(c echo.Context, name string) (string, error) {
	v := c.QueryParam(name)
	if v == "" {
		return "", usecase.NewHTTPError(http.StatusUnprocessableEntity, name+" is required")
	}
	return v, nil
}

func queryOptional(c echo.Context, name string) *string {
	if !c.QueryParams().Has(name) {
		return nil
	}
	v := c.QueryParam(name)
	return &v
}

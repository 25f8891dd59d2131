package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wires go-playground/validator into echo so request DTOs
// validate through their struct tags (snooze duration bounds, view names)
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface. Tag violations come
// back raw; the central error handler formats them into VALIDATION_* codes
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
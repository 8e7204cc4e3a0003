package handler

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/response"
	"VCS_Sandbox_Dashboard/pkg/access"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters long", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON decodes the body into req and answers 400 when it is malformed or invalid.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

func isNotFound(err error) bool {
	var respErr *access.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// backendError answers 502 with the normalized backend failure.
func backendError(c *gin.Context, l Logger, err error, errDescription string) {
	l.LoggingError(c, err, errDescription, zap.WarnLevel)
	c.JSON(http.StatusBadGateway, response.Response{
		Message: access.NormalizeError(err),
	})
}

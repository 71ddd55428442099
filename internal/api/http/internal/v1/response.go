package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// errorResponse maps a service error to a status code and writes it.
func errorResponse(c *gin.Context, msg string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrNothingToUpdate):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: "No fields to update"})
	case errors.Is(err, domain.ErrDuplicateEntry):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusConflict, ErrorStruct{Error: "Record already exists"})
	case errors.Is(err, domain.ErrMissingParent):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusNotFound, ErrorStruct{Error: "Referenced record not found"})
	default:
		if message, ok := notFoundMessage(err); ok {
			logger.Warn(msg, zap.Error(err))
			c.JSON(http.StatusNotFound, ErrorStruct{Error: message})
			return
		}
		logger.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, ErrorStruct{Error: err.Error()})
	}
}

// bindingErrorResponse reports a request that failed binding. Validator
// failures name every offending field.
func bindingErrorResponse(c *gin.Context, err error) {
	logger.Warn("invalid request", zap.Error(err))

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.JSON(http.StatusBadRequest, ValidationErrorStruct{
			Error:  "Validation error",
			Errors: out,
		})
		return
	}

	c.JSON(http.StatusBadRequest, ErrorStruct{Error: "Invalid request: " + err.Error()})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "number":
		return "This field must be numeric"
	case "gt":
		return fmt.Sprintf("Must be greater than %v", value)
	case "gte":
		return fmt.Sprintf("Must be at least %v", value)
	case "lte":
		return fmt.Sprintf("Must be at most %v", value)
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	case "zipcode":
		return "Zip code must have 5 digits"
	case "phonenumber":
		return "Invalid phone number"
	case "date":
		return "Date must be YYYY-MM-DD"
	}
	return tag
}

// idParam parses a positive integer path parameter. On failure it writes a
// 400 response and returns false.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: "must be a positive integer", Field: name})
		return 0, false
	}
	return id, true
}

// dateParam parses a YYYY-MM-DD path parameter.
func dateParam(c *gin.Context, name string) (domain.Date, bool) {
	date, err := domain.ParseDate(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: "must be a date in YYYY-MM-DD format", Field: name})
		return domain.Date{}, false
	}
	return date, true
}

func createdResponse(c *gin.Context, message string, id int64) {
	c.JSON(http.StatusCreated, CreatedStruct{Message: message, ID: id})
}

func messageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageStruct{Message: message})
}

// parseOptionalDate returns nil for a nil input. The caller validated the format.
func parseOptionalDate(s *string) *domain.Date {
	if s == nil {
		return nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}

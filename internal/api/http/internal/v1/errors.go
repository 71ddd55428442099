package v1

import (
	"errors"

	"github.com/coopconnect/backend/internal/service"
)

type ErrorStruct struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
} // @name ErrorStruct

type MessageStruct struct {
	Message string `json:"message"`
} // @name MessageStruct

type CreatedStruct struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
} // @name CreatedStruct

type ValidationErrorStruct struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var notFoundMessages = []struct {
	err     error
	message string
}{
	{service.ErrUserNotFound, "User not found"},
	{service.ErrCityNotFound, "City not found"},
	{service.ErrLocationNotFound, "Location not found"},
	{service.ErrHousingNotFound, "Housing not found"},
	{service.ErrJobPostingNotFound, "Job posting not found"},
	{service.ErrApplicationNotFound, "Application not found"},
	{service.ErrSubletNotFound, "Sublet not found"},
	{service.ErrHospitalNotFound, "Hospital not found"},
	{service.ErrAirportNotFound, "Airport not found"},
	{service.ErrPerformanceNotFound, "No performance data found for this date"},
	{service.ErrNoCitiesInCostRange, "No cities found within the target cost range"},
}

func notFoundMessage(err error) (string, bool) {
	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			return nf.message, true
		}
	}
	return "", false
}

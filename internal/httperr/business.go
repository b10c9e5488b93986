package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError is a recoverable, request-scoped rule violation. The
// code doubles as the wire error_code.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessMsg carries a caller-facing message with enough detail to
// correct the request.
func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var statusByCode = map[string]int{
	"doctor_not_found":        http.StatusNotFound,
	"appointment_not_found":   http.StatusNotFound,
	"weekend_not_allowed":     http.StatusBadRequest,
	"past_date":               http.StatusBadRequest,
	"outside_working_hours":   http.StatusBadRequest,
	"slot_taken":              http.StatusConflict,
	"invalid_status":          http.StatusBadRequest,
	"doctor_has_appointments": http.StatusBadRequest,
}

var defaultMessages = map[string]string{
	"doctor_not_found":        "Doctor not found.",
	"appointment_not_found":   "Appointment not found.",
	"weekend_not_allowed":     "Appointments can only be scheduled on weekdays.",
	"past_date":               "Cannot book appointments in the past.",
	"outside_working_hours":   "Appointment time must be within the doctor's working hours.",
	"slot_taken":              "This time slot is already booked. Please choose another time.",
	"invalid_status":          "Invalid status. Must be one of: pending, completed, cancelled.",
	"doctor_has_appointments": "Cannot delete doctor with existing appointments. Please delete or reassign appointments first.",
}

// WriteBusiness maps a use-case error onto the HTTP surface. Anything
// outside the business taxonomy is surfaced as a generic internal
// error.
func WriteBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Internal server error.")
		return
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg := be.Message
	if msg == "" {
		msg = defaultMessages[be.Code]
	}

	Write(c, status, be.Code, msg)
}

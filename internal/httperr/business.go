package httperr

import "errors"

// BusinessError is a rule violation the caller can act on. Code is the
// stable machine-readable part; Message is what gets shown to people.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

var messages = map[string]string{
	"invalid_status":           "Unknown appointment status.",
	"invalid_state":            "The appointment cannot move to that status.",
	"appointment_not_found":    "Appointment not found.",
	"doctor_name_required":     "Doctor name is required.",
	"doctor_not_found":         "Doctor not found.",
	"invalid_appointment_date": "Appointment date must be RFC3339 or YYYY-MM-DD HH:MM.",
	"appointment_in_past":      "Appointment date is in the past.",
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Message: messages[code]}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}

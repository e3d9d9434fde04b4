package httperr

import "errors"

// Error codes shared between usecases and handlers.
const (
	CodeInvalidReference = "invalid_reference"
	CodeNotFound         = "not_found"
	CodeSlotConflict     = "slot_conflict"
	CodeValidation       = "validation_error"
	CodeInvalidState     = "invalid_state"
	CodePersistence      = "persistence_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code carried by err, or "" when err is not a
// business error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

package common

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy shared by all services. Handlers map these onto HTTP
// responses: validation -> flash + redirect, permission -> 403,
// not found -> 404. Uniqueness conflicts never surface as errors on the
// like/friendship paths; services collapse them to no-op results.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrPermission = errors.New("permission denied")
)

// ValidationError marks user-correctable input problems. The message is
// shown to the user verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is a unique-constraint violation. Requires
// the gorm connection to be opened with TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsRecordNotFound reports whether err comes from an empty First/Take lookup.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

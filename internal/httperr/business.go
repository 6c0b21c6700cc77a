package httperr

import "errors"

// Kind classifies a failure for the caller.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindInvalidState    Kind = "invalid_state"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

// BusinessError is an expected failure the caller can act on. Code is the
// stable machine readable identifier sent as error_code.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	// Alternative names another action the caller may take instead.
	Alternative string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func InvalidArgument(code, message string) error {
	return ErrBusiness(KindInvalidArgument, code, message)
}

func NotFoundErr(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func InvalidState(code, message string) error {
	return ErrBusiness(KindInvalidState, code, message)
}

func Conflict(code, message, alternative string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message, Alternative: alternative}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns KindInternal for anything that is not a BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

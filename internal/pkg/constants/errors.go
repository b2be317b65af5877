package constants

import "net/http"

// CodedError carries the HTTP status the API error handler should answer
// with. Services wrap these with %w so the code survives the unwrap chain.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string { return e.msg }
func (e *CodedError) Code() int     { return e.code }

var (
	ErrDBNotFound       = NewCodedError(http.StatusNotFound, "not found")
	ErrIslandNotFound   = NewCodedError(http.StatusNotFound, "island not found")
	ErrUnknownIslandID  = NewCodedError(http.StatusBadRequest, "invalid island id")
	ErrProvinceNotFound = NewCodedError(http.StatusNotFound, "province not found")
)

package response

import "errors"

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

//Error Codes
type ErrCode string

var (
	FAILED_REQUEST  ErrCode = "REQUEST_FAILED"
	BAD_REQUEST     ErrCode = "FAILED_TO_DECODE"
	MISSING_FILTERS ErrCode = "MISSING_FILTERS"
	LOCKED          ErrCode = "LOCKED"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrMissingFilters = errors.New("missing search filters")
	ErrInvalidTime    = errors.New("invalid time of day")
	ErrInvalidWeekDay = errors.New("invalid week day")
	ErrLocked         = errors.New("resource is locked")
)

// Fixed user-facing messages. Internal error text never reaches the client.
const (
	MsgMissingFilters     = "Missing filters to search classes"
	MsgRegistrationFailed = "Unexpected error while creating new class."
)

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}

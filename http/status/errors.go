package status

// HTTPError is an error carrying the status code it should be answered with.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrNoRequestLine        = NewError(BadRequest, "no header line received")
	ErrMalformedRequestLine = NewError(BadRequest, "malformed header line")
	ErrUnsupportedMethod    = NewError(NotImplemented, "request method is not supported")
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
	ErrNotImplemented       = NewError(NotImplemented, "not implemented")
)

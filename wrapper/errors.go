package wrapper

// ErrorType represents the failure categories of a wrapper invocation.
type ErrorType string

const (
	ErrorTypeInsufficientArguments ErrorType = "insufficient_arguments"
	ErrorTypeInvalidFlagEncoding   ErrorType = "invalid_flag_encoding"
	ErrorTypeDelegateSpawn         ErrorType = "delegate_spawn"
	ErrorTypeDelegateFailed        ErrorType = "delegate_failed"
)

// Sentinels for errors.Is; they match any *Error of the same type.
var (
	ErrInsufficientArguments = &Error{Type: ErrorTypeInsufficientArguments}
	ErrInvalidFlagEncoding   = &Error{Type: ErrorTypeInvalidFlagEncoding}
	ErrDelegateSpawn         = &Error{Type: ErrorTypeDelegateSpawn}
	ErrDelegateFailed        = &Error{Type: ErrorTypeDelegateFailed}
)

// Error is a typed wrapper failure with an optional cause and context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// NewError creates a new Error with the given type and message
func NewError(typ ErrorType, message string) *Error {
	return &Error{
		Type:    typ,
		Message: message,
		Context: make(map[string]any),
	}
}

// Error renders the message followed by the cause chain.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Type)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches on Type so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Type == e.Type
}

// WithCause adds an underlying cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context information to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

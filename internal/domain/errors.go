package domain

// ErrorKind classifies operation failures so the router and speech layer
// can branch without inspecting message text.
type ErrorKind int

const (
	ErrorInternal ErrorKind = iota
	ErrorInvalidInput
	ErrorNotFound
	ErrorUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorInvalidInput:
		return "invalid_input"
	case ErrorNotFound:
		return "not_found"
	case ErrorUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// OperationError is the business failure marker a data operation returns
// instead of a payload. Message is user-diagnostic text; Kind drives
// speech selection.
type OperationError struct {
	Kind    ErrorKind
	Message string
}

func (e *OperationError) Error() string { return e.Message }

func NotFound(msg string) *OperationError {
	return &OperationError{Kind: ErrorNotFound, Message: msg}
}

func InvalidInput(msg string) *OperationError {
	return &OperationError{Kind: ErrorInvalidInput, Message: msg}
}

func Unavailable(msg string) *OperationError {
	return &OperationError{Kind: ErrorUnavailable, Message: msg}
}

func Internal(msg string) *OperationError {
	return &OperationError{Kind: ErrorInternal, Message: msg}
}

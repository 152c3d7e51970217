package serverutils

// Response is the standard API envelope.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// SuccessResponseWithWarning is used when the operation succeeded but a
// non-fatal degradation occurred (e.g. the answer could not be recorded).
func SuccessResponseWithWarning[T any](message, warning string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Warning: warning,
		Data:    data,
	}
}

func ErrorResponse(message string) Response[any] {
	return Response[any]{
		Success: false,
		Message: message,
	}
}

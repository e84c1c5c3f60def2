package dto

// Result is the envelope every operation returns: business-rule violations
// come back as Success=false with a machine-readable code, never as a Go
// error. Only infrastructure failures propagate as errors.
type Result struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// OK builds a success envelope.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failure envelope with a result code.
func Fail(code, message string) Result {
	return Result{Success: false, Code: code, Message: message}
}

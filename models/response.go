package models

// Response is the CLI output envelope around an analysis result.
type Response struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data,omitempty"`
	Confidence int         `json:"confidence"`
	Warnings   []string    `json:"warnings,omitempty"`
	Error      *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type"`
	Message          string   `json:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty"`
}

// NewErrorResponse creates a failed response with structured error info.
func NewErrorResponse(errType, message string, actions ...string) Response {
	return Response{
		Status: "error",
		Error: &ErrorInfo{
			Type:             errType,
			Message:          message,
			SuggestedActions: actions,
		},
	}
}

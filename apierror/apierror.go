// Package apierror holds the error shapes shared by every service client:
// the generic service error decoded from a response, the client-side
// parameter error, and the ordered table that turns error codes into typed errors.
package apierror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
)

// ServiceError is the decoded form of a non-2xx response. Typed service errors
// embed it, so every error returned by a client exposes the same accessors.
type ServiceError struct {
	Code       string
	Message    string
	Fault      smithy.ErrorFault
	StatusCode int
	RequestID  string
}

var _ smithy.APIError = (*ServiceError)(nil)

func (e *ServiceError) Error() string {
	var b strings.Builder
	b.WriteString("api error ")
	b.WriteString(e.Code)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d", e.StatusCode)
		if e.RequestID != "" {
			fmt.Fprintf(&b, ", request id %s", e.RequestID)
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *ServiceError) ErrorCode() string             { return e.Code }
func (e *ServiceError) ErrorMessage() string          { return e.Message }
func (e *ServiceError) ErrorFault() smithy.ErrorFault { return e.Fault }

// HTTPStatusCode lets the aws-sdk-go-v2 retryer classify 5xx responses.
func (e *ServiceError) HTTPStatusCode() int { return e.StatusCode }

// Base returns the embedded service error. Typed errors inherit it.
func (e *ServiceError) Base() *ServiceError { return e }

// FaultFromStatus derives the fault side from an HTTP status code.
func FaultFromStatus(status int) smithy.ErrorFault {
	switch {
	case status >= 500:
		return smithy.FaultServer
	case status >= 400:
		return smithy.FaultClient
	default:
		return smithy.FaultUnknown
	}
}

// CodeFromStatus is the fallback code for responses whose body carries none.
func CodeFromStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("HTTP%d", status)
	}
	return strings.ReplaceAll(text, " ", "")
}

package access

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// NetworkUnreachableMessage is reported for calls that were sent but never answered.
const NetworkUnreachableMessage = "network error: server is not responding"

var ErrInvalidRetryPolicy = errors.New("invalid retry policy")

// ResponseError is returned when the remote endpoint answered with a non-success status.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.message())
}

func (e *ResponseError) message() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return "unknown status"
}

func NewResponseError(statusCode int, message string) error {
	return &ResponseError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NoResponseError is returned when a request was dispatched but no response arrived.
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	if e.Err == nil {
		return "no response"
	}
	return fmt.Sprintf("no response: %v", e.Err)
}

func (e *NoResponseError) Unwrap() error {
	return e.Err
}

func NewNoResponseError(err error) error {
	return &NoResponseError{Err: err}
}

// NormalizeError renders any failure as a non-empty, human-readable message.
// Server errors take priority over missing responses, which take priority over local failures.
func NormalizeError(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return fmt.Sprintf("error %d: %s", respErr.StatusCode, respErr.message())
	}
	if isNoResponse(err) {
		return NetworkUnreachableMessage
	}
	if err == nil || err.Error() == "" {
		return "request error: unknown error"
	}
	return fmt.Sprintf("request error: %s", err.Error())
}

func isNoResponse(err error) bool {
	if err == nil {
		return false
	}
	var noResp *NoResponseError
	if errors.As(err, &noResp) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

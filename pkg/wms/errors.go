package wms

import (
	"errors"
	"fmt"
	"strings"
)

// UpstreamError is an HTTP-level error response from the WMS. The executor
// retries it per the attempt schedule; exhausting the schedule surfaces the
// last one to the caller.
type UpstreamError struct {
	Method     string
	Path       string
	StatusCode int
	Snippet    string
}

func (e *UpstreamError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("wms %s %s: upstream status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("wms %s %s: upstream status %d: %s", e.Method, e.Path, e.StatusCode, e.Snippet)
}

// DecodeError is a successful response whose body is not valid JSON.
// It is never retried.
type DecodeError struct {
	Path    string
	Snippet string
	cause   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wms %s: decode response: %v (body: %s)", e.Path, e.cause, e.Snippet)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsDecode reports whether err is (or wraps) a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// bodySnippet truncates a response body for error messages.
func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}

package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError represents a rejected request parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return "invalid request"
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for rejected input.
var ErrValidation = ValidationError{}

// UpstreamError represents a failure reaching the triple store. Reason
// distinguishes transport-level failures from unexpected status codes so the
// two stay tellable apart in logs and spans.
type UpstreamError struct {
	Reason string // "transport" or "status"
	Err    error
}

func (e UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream unavailable (%s)", e.Reason)
	}
	return fmt.Sprintf("upstream unavailable (%s): %v", e.Reason, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

func (e UpstreamError) Is(target error) bool {
	_, ok := target.(UpstreamError)
	if ok {
		return true
	}
	_, ok = target.(*UpstreamError)
	return ok
}

// ErrUpstream is the sentinel error for triple-store failures.
var ErrUpstream = UpstreamError{}

// DecodeError represents a malformed response body from the triple store.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	if e.Err == nil {
		return "malformed store response"
	}
	return fmt.Sprintf("malformed store response: %v", e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

func (e DecodeError) Is(target error) bool {
	_, ok := target.(DecodeError)
	if ok {
		return true
	}
	_, ok = target.(*DecodeError)
	return ok
}

// ErrDecode is the sentinel error for malformed store responses.
var ErrDecode = DecodeError{}

package repositories

import (
	"errors"
	"fmt"
)

// Sentinels let callers classify failures with errors.Is.
var (
	ErrNetwork  = errors.New("network error")
	ErrDecode   = errors.New("decode error")
	ErrProvider = errors.New("provider error")
)

// NetworkError means no usable response was obtained: transport failure,
// timeout, cancellation or a truncated body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// DecodeError means a response arrived but did not have the expected shape.
type DecodeError struct {
	Op     string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: decode error: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: decode error: %s", e.Op, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ProviderError is a well-formed rejection from the provider, such as an
// invalid key or an unknown location. Message is the provider's own text.
type ProviderError struct {
	Op         string
	StatusCode int
	Code       int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: provider error (status %d, code %d): %s", e.Op, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: provider error (status %d): %s", e.Op, e.StatusCode, e.Message)
}

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

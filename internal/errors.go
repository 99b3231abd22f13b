package internal

import (
	"errors"
	"fmt"
)

// StorageError represents errors accessing the key/value store
type StorageError struct {
	Path string
	Op   string // "open", "get", "set", "remove", "clear"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors decoding a persisted value
type ParseError struct {
	Source string // "localStorage", "config"
	Key    string // storage key or file path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies a failed completion or a rejected input.
type ErrorKind string

const (
	KindAuth       ErrorKind = "auth"
	KindRateLimit  ErrorKind = "rate_limit"
	KindNetwork    ErrorKind = "network"
	KindServer     ErrorKind = "server"
	KindValidation ErrorKind = "validation"
)

// Sentinel errors matched with errors.Is against a *DispatchError.
var (
	ErrAuth       = errors.New("authentication failed")
	ErrRateLimit  = errors.New("rate limited")
	ErrNetwork    = errors.New("network unreachable")
	ErrServer     = errors.New("server error")
	ErrValidation = errors.New("validation failed")
	ErrBusy       = errors.New("a message is already being processed")
)

// User-facing messages.
const (
	MsgAuthError      = "API key tidak valid. Silakan periksa konfigurasi Anda."
	MsgRateLimitError = "Terlalu banyak request. Silakan tunggu sebentar."
	MsgServerError    = "Server error. Silakan coba lagi nanti."
	MsgNetworkError   = "Tidak dapat terhubung ke server. Periksa koneksi internet Anda."
	MsgEmptyMessage   = "Message content is required"
)

// DispatchError is a classified failure of the completion call, or a
// validation failure that blocked it. Fallback, when set, is the canned
// reply the session shows in place of an error message.
type DispatchError struct {
	Kind     ErrorKind
	Status   int
	Message  string
	Fallback string
	Err      error
}

func (e *DispatchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return string(e.Kind) + " error"
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *DispatchError) Is(target error) bool {
	switch target {
	case ErrAuth:
		return e.Kind == KindAuth
	case ErrRateLimit:
		return e.Kind == KindRateLimit
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrServer:
		return e.Kind == KindServer
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

// Retryable reports whether resending the same input may succeed.
func (e *DispatchError) Retryable() bool {
	switch e.Kind {
	case KindAuth, KindValidation:
		return false
	}
	return true
}

// NewValidationError builds a validation failure with a user-facing message.
func NewValidationError(message string) *DispatchError {
	return &DispatchError{Kind: KindValidation, Message: message}
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

package domain

import "errors"

var (
	// ErrInvalidRequest signals malformed caller input (bad page, size, ages).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrBackendUnavailable signals that the catalog store is unreachable or timed out.
	// Retryable from the caller's perspective.
	ErrBackendUnavailable = errors.New("catalog store unavailable")
	// ErrBackendError signals that the catalog store replied with something malformed.
	// Not retryable; carries diagnostic detail via wrapping.
	ErrBackendError = errors.New("catalog store error")
)

// KeyPrefix namespaces all keys written to the catalog store.
const KeyPrefix = "coursefind:"

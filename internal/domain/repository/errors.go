// Package repository defines the persistence and backend-access contracts the
// use cases depend on. Local contracts are backed by the on-device record
// store (the browser-localStorage analogue); remote contracts are backed by
// the external commerce backend over HTTP.
package repository

import "mycomart/internal/errors"

// Sentinel errors shared across repository implementations.
var (
	// ErrRecordNotFound is returned when a local record key is absent.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnauthorized is returned by remote calls the backend rejected with
	// 401. The session manager's global watch reacts to it; individual
	// callers treat it as terminal and do not retry.
	ErrUnauthorized = errors.New("backend rejected credentials")
)

package event

import "errors"

// Errors returned by bus operations.
var (
	// ErrSubscriptionNotFound indicates the subscription is not registered.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrNilHandler indicates a nil handler was passed to Subscribe.
	ErrNilHandler = errors.New("handler is nil")
)

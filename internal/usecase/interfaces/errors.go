package interfaces

import "errors"

// Storage-level outcomes shared by every repository implementation.
var (
	// ErrAlreadyExists is returned when a create hits an existing key.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrConditionFailed is returned when a guarded write loses its guard.
	ErrConditionFailed = errors.New("write condition failed")
	// ErrAttachmentAlreadyLinked is returned when an attachment already
	// belongs to a different order.
	ErrAttachmentAlreadyLinked = errors.New("attachment already linked to another order")
	// ErrInvalidMediaLink is returned for external links the gateway cannot use.
	ErrInvalidMediaLink = errors.New("invalid external media link")
	// ErrUnsupportedProvider is returned for an unknown storage provider.
	ErrUnsupportedProvider = errors.New("unsupported storage provider")
)

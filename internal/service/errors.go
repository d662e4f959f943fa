package service

import "errors"

// Sentinel errors surfaced by the cipher and attachment services.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrUnsupportedCipherType is returned when a cipher carries a type
	// tag none of the item codecs understand.
	ErrUnsupportedCipherType = errors.New("unsupported cipher type")

	// ErrUploadFailed wraps any attachment upload failure after the
	// attachment was registered server-side. By the time it is returned
	// the compensating delete has already been issued.
	ErrUploadFailed = errors.New("attachment upload failed")

	// ErrUnsupportedUploadType is returned when the server answers an
	// attachment registration with an upload strategy this client does
	// not implement.
	ErrUnsupportedUploadType = errors.New("unknown file upload type")

	// ErrAttachmentMissingKey is returned when an item cannot be moved
	// to an organization because one of its attachments predates
	// per-attachment keys.
	ErrAttachmentMissingKey = errors.New("attachment has no attachment key")
)

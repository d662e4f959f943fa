package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer
	// token. The caller must re-authenticate.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrUploadURLExpired is reported by the blob uploader when the
	// provider rejects a pre-signed URL as expired.
	ErrUploadURLExpired = errors.New("upload url expired")

	// ErrRenewalExhausted is returned when a renewed pre-signed URL is
	// rejected again; no further retries are performed.
	ErrRenewalExhausted = errors.New("upload url renewal exhausted")
)

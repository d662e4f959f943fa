package models

import "strings"

// AttachmentUploadDataResponse is the upload descriptor returned by the
// attachment registration endpoint. FileUploadType selects the strategy;
// URL is only set for the cloud-blob strategy.
type AttachmentUploadDataResponse struct {
	AttachmentID   string         `json:"attachmentId"`
	URL            string         `json:"url,omitempty"`
	FileUploadType FileUploadType `json:"fileUploadType"`

	// CipherResponse carries the updated cipher record including the new
	// attachment entry. CipherMiniResponse replaces it for admin requests.
	CipherResponse     *Cipher `json:"cipherResponse,omitempty"`
	CipherMiniResponse *Cipher `json:"cipherMiniResponse,omitempty"`
}

// AttachmentUploadURLResponse is returned by the renewal endpoint with a
// fresh pre-signed URL for an in-progress cloud-blob upload.
type AttachmentUploadURLResponse struct {
	URL string `json:"url"`
}

// AttachmentResponse describes a stored attachment, including a download
// URL and the wrapped data key needed to decrypt the blob.
type AttachmentResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Size     int64  `json:"size,string"`
	SizeName string `json:"sizeName"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}

// ErrorResponse is the server's error payload shape. Validation errors
// arrive keyed by field with one or more messages each.
type ErrorResponse struct {
	Message          string              `json:"message"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
}

// GetSingleMessage flattens the payload to one human-readable line: the
// first validation message when present, the top-level message otherwise.
func (e *ErrorResponse) GetSingleMessage() string {
	for _, msgs := range e.ValidationErrors {
		for _, m := range msgs {
			if strings.TrimSpace(m) != "" {
				return m
			}
		}
	}
	return e.Message
}

package models

// AttachmentRequest registers a new attachment with the server before any
// file bytes are transferred. All strings are already encrypted; the
// server never sees plaintext names or keys.
type AttachmentRequest struct {
	// Key is the per-attachment data key wrapped under the item's key.
	Key string `json:"key"`

	// FileName is the encrypted file name in EncString wire form.
	FileName string `json:"fileName"`

	// FileSize is the size of the *encrypted* blob in bytes.
	FileSize int64 `json:"fileSize"`

	// AdminRequest marks uploads performed in an administrative context;
	// the server then answers with the mini cipher representation.
	AdminRequest bool `json:"adminRequest"`
}

// CipherShareRequest moves a single cipher into an organization. The
// cipher must already be re-encrypted under the organization's key.
type CipherShareRequest struct {
	Cipher        *Cipher  `json:"cipher"`
	CollectionIDs []string `json:"collectionIds"`
}

// CipherBulkShareRequest is the bulk variant of CipherShareRequest.
type CipherBulkShareRequest struct {
	Ciphers       []*Cipher `json:"ciphers"`
	CollectionIDs []string  `json:"collectionIds"`
}

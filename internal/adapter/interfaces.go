package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

import (
	"context"

	"github.com/solovyev/go-vault-cipher/models"
)

// ApiClient is the transport collaborator for the cipher core. Every call
// issues a single authenticated request against the vault server API and
// maps server error payloads to one human-readable message.
type ApiClient interface {
	// PostCipherAttachment registers a new attachment for a cipher and
	// returns the upload descriptor telling the client how to transfer
	// the file bytes.
	PostCipherAttachment(ctx context.Context, cipherID string, req models.AttachmentRequest) (*models.AttachmentUploadDataResponse, error)

	// PostAttachmentFile uploads the encrypted blob through the server
	// (Direct strategy) as a multipart body: a "key" part plus a "data"
	// part whose filename is the encrypted file name.
	PostAttachmentFile(ctx context.Context, cipherID, attachmentID string, encKey, encFileName string, encData []byte) error

	// RenewAttachmentUploadURL fetches a fresh pre-signed URL for an
	// in-progress cloud-blob upload whose URL has expired.
	RenewAttachmentUploadURL(ctx context.Context, cipherID, attachmentID string) (string, error)

	// UploadBlob PUTs the encrypted blob directly to provider storage
	// (CloudBlob strategy). When the provider reports the pre-signed URL
	// expired, renew is called once for a fresh URL and the PUT is
	// retried exactly once more.
	UploadBlob(ctx context.Context, url string, encData []byte, renew func(ctx context.Context) (string, error)) error

	// DeleteCipherAttachment removes an attachment record; used both for
	// user-driven deletion and for upload-failure compensation.
	DeleteCipherAttachment(ctx context.Context, cipherID, attachmentID string) error

	// DeleteCipherAttachmentAdmin is the administrative delete variant.
	DeleteCipherAttachmentAdmin(ctx context.Context, cipherID, attachmentID string) error

	// GetAttachmentData returns download metadata for an attachment,
	// including its wrapped data key.
	GetAttachmentData(ctx context.Context, cipherID, attachmentID string) (*models.AttachmentResponse, error)

	// PutShareCipher transfers one cipher to an organization. The cipher
	// must already be re-encrypted under the organization key.
	PutShareCipher(ctx context.Context, cipherID string, req models.CipherShareRequest) (*models.Cipher, error)

	// PutShareCiphers is the bulk variant of PutShareCipher.
	PutShareCiphers(ctx context.Context, req models.CipherBulkShareRequest) error
}

package models

// CipherType selects which item-type payload a cipher carries. Exactly one
// of the four payloads is populated on any given cipher.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
)

// FieldType defines how a custom field value is rendered and protected.
type FieldType int

const (
	// FieldTypeText is a plain visible custom field.
	FieldTypeText FieldType = 0

	// FieldTypeHidden is masked in the UI and treated as a secret on par
	// with passwords: old values are captured into password history.
	FieldTypeHidden FieldType = 1

	// FieldTypeBoolean holds the literal string "true" or "false".
	FieldTypeBoolean FieldType = 2

	// FieldTypeLinked mirrors another field of the item via LinkedIdType.
	FieldTypeLinked FieldType = 3
)

// CipherRepromptType controls whether the UI re-asks for the master
// password before revealing the item. Copied verbatim through encryption.
type CipherRepromptType int

const (
	CipherRepromptNone     CipherRepromptType = 0
	CipherRepromptPassword CipherRepromptType = 1
)

// SecureNoteType exists for wire compatibility; Generic is the only value.
type SecureNoteType int

const SecureNoteTypeGeneric SecureNoteType = 0

// FileUploadType tags the upload strategy the server selected for an
// attachment: a server-mediated multipart POST or a direct PUT to
// provider blob storage via a pre-signed URL.
type FileUploadType int

const (
	FileUploadDirect    FileUploadType = 0
	FileUploadCloudBlob FileUploadType = 1
)

// URIMatchType defines how a login URI is matched against a page origin.
type URIMatchType int

const (
	URIMatchDomain     URIMatchType = 0
	URIMatchHost       URIMatchType = 1
	URIMatchStartsWith URIMatchType = 2
	URIMatchExact      URIMatchType = 3
	URIMatchRegex      URIMatchType = 4
	URIMatchNever      URIMatchType = 5
)

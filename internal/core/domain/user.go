package domain

// User is the typed view of an account document fetched from the
// remote store.
type User struct {
	// Key is the remote store key the document was fetched from.
	Key string

	// ID is the account identifier (the payment address doubles as
	// the user id in the original document schema).
	ID string

	// DisplayName is the optional human-readable name.
	DisplayName string

	// CreatedAt is the account creation timestamp, ISO 8601.
	CreatedAt string

	// PublicKey is the account's PEM-encoded public key.
	PublicKey string

	// Signature proves ownership of the account document.
	Signature string

	// Avatar optionally describes the chunked avatar image object.
	Avatar *ObjectDescriptor
}

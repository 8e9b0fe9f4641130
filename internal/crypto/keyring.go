// Package crypto provides the database encryption key.
package crypto

// Keyring provides secure key storage abstraction
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "reconnect"
	KeyName     = "db-encryption-key"

	// KeyEnvVar holds the key on platforms without a system keyring.
	KeyEnvVar = "RECONNECT_DB_KEY"
)

// NewKeyring returns the best available keyring implementation
func NewKeyring() Keyring {
	return newPlatformKeyring()
}

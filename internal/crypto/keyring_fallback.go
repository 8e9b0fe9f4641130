//go:build !darwin

package crypto

import (
	"errors"
	"fmt"
	"os"
)

type envKeyring struct{}

func newPlatformKeyring() Keyring {
	return &envKeyring{}
}

func (k *envKeyring) GetKey() (string, error) {
	key := os.Getenv(KeyEnvVar)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", KeyEnvVar)
	}
	return key, nil
}

// SetKey cannot persist anything; it tells the user which variable to export.
func (k *envKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	return fmt.Errorf("no system keyring on this platform: export %s before running reconnect", KeyEnvVar)
}

func (k *envKeyring) DeleteKey() error {
	return fmt.Errorf("no system keyring on this platform: unset %s manually", KeyEnvVar)
}

func (k *envKeyring) IsAvailable() bool {
	return os.Getenv(KeyEnvVar) != ""
}

//go:build darwin

package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

type keychain struct{}

func newPlatformKeyring() Keyring {
	return &keychain{}
}

// GetKey retrieves the encryption key from the macOS Keychain
func (k *keychain) GetKey() (string, error) {
	key, err := keyring.Get(ServiceName, KeyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("encryption key not found in keychain: %w", err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read keychain: %w", err)
	}
	if key == "" {
		return "", errors.New("encryption key is empty")
	}
	return key, nil
}

func (k *keychain) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store key in keychain: %w", err)
	}
	return nil
}

func (k *keychain) DeleteKey() error {
	if err := keyring.Delete(ServiceName, KeyName); err != nil {
		return fmt.Errorf("failed to delete key from keychain: %w", err)
	}
	return nil
}

// IsAvailable probes the keychain with a throwaway entry.
func (k *keychain) IsAvailable() bool {
	const probe = "__reconnect_probe__"
	if err := keyring.Set(ServiceName, probe, "probe"); err != nil {
		return false
	}
	_ = keyring.Delete(ServiceName, probe)
	return true
}

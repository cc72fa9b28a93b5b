// Package keyring stores backend passwords in the OS keyring so they never
// appear in config files or connection URLs.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/smartpack/internal/constants"
)

// Accounts with a stored secret.
const (
	AccountPostgres = "postgres"
	AccountRedis    = "redis"
)

var Accounts = []string{AccountPostgres, AccountRedis}

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
	// ErrUnknownAccount is returned for accounts smartpack does not manage
	ErrUnknownAccount = errors.New("unknown keyring account")
)

func user(account string) (string, error) {
	for _, a := range Accounts {
		if a == account {
			return constants.DefaultKeyringUser + "-" + account, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAccount, account)
}

// Get retrieves the secret for account. Returns ErrNotFound if nothing is stored.
func Get(account string) (string, error) {
	u, err := user(account)
	if err != nil {
		return "", err
	}
	secret, err := keyring.Get(constants.AppName, u)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// Set stores the secret for account.
func Set(account, secret string) error {
	u, err := user(account)
	if err != nil {
		return err
	}
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, u, secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// Delete removes the secret for account.
func Delete(account string) error {
	u, err := user(account)
	if err != nil {
		return err
	}
	if err := keyring.Delete(constants.AppName, u); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// Lookup returns the stored secret, or "" when none is stored or the keyring
// cannot be reached.
func Lookup(account string) string {
	secret, err := Get(account)
	if err != nil {
		return ""
	}
	return secret
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

package cli

import (
	"errors"
	"strings"

	"github.com/julianstephens/smartpack/internal/keyring"
)

type KeyringSetCmd struct {
	Account string `arg:"" enum:"postgres,redis" help:"Backend the password belongs to (postgres or redis)."`
	Secret  string `arg:"" help:"Password to store."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if err := keyring.Set(c.Account, c.Secret); err != nil {
		return err
	}
	ctx.printf("✓ Stored %s password in the OS keyring\n", c.Account)
	return nil
}

type KeyringGetCmd struct {
	Account string `arg:"" enum:"postgres,redis" help:"Backend the password belongs to (postgres or redis)."`
	Show    bool   `help:"Print the password instead of a masked value."`
}

func (c *KeyringGetCmd) Run(ctx *Context) error {
	secret, err := keyring.Get(c.Account)
	if err != nil {
		return err
	}
	if !c.Show {
		secret = mask(secret)
	}
	ctx.println(secret)
	return nil
}

type KeyringDeleteCmd struct {
	Account string `arg:"" enum:"postgres,redis" help:"Backend the password belongs to (postgres or redis)."`
}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.Delete(c.Account); err != nil {
		return err
	}
	ctx.printf("✓ Removed %s password from the OS keyring\n", c.Account)
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		ctx.println("⚠ OS keyring is not available on this system")
		return nil
	}
	ctx.println("✓ OS keyring is available")
	for _, account := range keyring.Accounts {
		_, err := keyring.Get(account)
		switch {
		case err == nil:
			ctx.printf("  %-10s stored\n", account)
		case errors.Is(err, keyring.ErrNotFound):
			ctx.printf("  %-10s not set\n", account)
		default:
			ctx.printf("  %-10s error: %v\n", account, err)
		}
	}
	return nil
}

func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}

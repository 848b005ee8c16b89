package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ShivamParikh1/HabitAppV11/internal/keyring"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/vault"
)

// masterKey fetches the vault master key from the OS keyring, prompting for
// and storing a new one on first use.
func masterKey() (string, error) {
	key, err := keyring.GetMasterKey()
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		return "", err
	}

	var entered string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Vault master password").
			Description("Used to obfuscate stored passwords. This is not strong encryption; do not store real credentials.").
			EchoMode(huh.EchoModePassword).
			Value(&entered),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	if entered == "" {
		return "", fmt.Errorf("master password cannot be empty")
	}

	if err := keyring.SetMasterKey(entered); err != nil {
		return "", err
	}
	return entered, nil
}

type VaultAddCmd struct {
	Service  string `arg:"" help:"Service name."`
	Username string `arg:"" help:"Username or email."`
	Password string `arg:"" help:"Password to store (obfuscated, not encrypted)."`
	URL      string `short:"u" help:"Service URL."`
}

func (c *VaultAddCmd) Run(ctx *Context) error {
	key, err := masterKey()
	if err != nil {
		return err
	}

	obfuscated, err := vault.Obfuscate(c.Password, key)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	ctx.Store.AddVaultEntry(models.VaultEntry{
		ServiceName:       c.Service,
		Username:          c.Username,
		EncryptedPassword: obfuscated,
		URL:               c.URL,
		UserID:            ctx.Store.State().User.ID,
	})
	fmt.Printf("Stored vault entry for %s\n", c.Service)
	return nil
}

type VaultShowCmd struct {
	Service string `arg:"" optional:"" help:"Service name; omit to list all entries."`
}

func (c *VaultShowCmd) Run(ctx *Context) error {
	entries := ctx.Store.State().VaultEntries

	if c.Service == "" {
		fmt.Println(titleStyle.Render("Vault"))
		for _, e := range entries {
			fmt.Printf("%s  %s  %s\n", e.ServiceName, e.Username, faintStyle.Render(e.ID))
		}
		return nil
	}

	key, err := masterKey()
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.ServiceName != c.Service {
			continue
		}
		password, err := vault.Reveal(e.EncryptedPassword, key)
		if err != nil {
			return fmt.Errorf("failed to reveal password: %w", err)
		}
		fmt.Printf("%s / %s: %s\n", e.ServiceName, e.Username, password)
		return nil
	}
	return fmt.Errorf("no vault entry for service: %s", c.Service)
}

type VaultRmCmd struct {
	ID string `arg:"" help:"Vault entry id."`
}

func (c *VaultRmCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	ctx.Store.DeleteVaultEntry(c.ID)
	fmt.Printf("Removed vault entry %s\n", c.ID)
	return nil
}

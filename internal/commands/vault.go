package commands

import (
	"context"
	"fmt"
	"time"

	"passliss/internal/config"
)

type vaultAddCmd struct{}

func (vaultAddCmd) Name() string        { return "vault-add" }
func (vaultAddCmd) Description() string { return "Add a credential to the vault" }
func (vaultAddCmd) Usage() string       { return "vault-add <service> <password> [username] [notes]" }

func (vaultAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return ErrUsage
	}
	var username, notes string
	if len(args) >= 3 {
		username = args[2]
	}
	if len(args) == 4 {
		notes = args[3]
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	entry, err := a.Vault.Add(ctx, args[0], username, args[1], notes)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created %s (%s)\n", entry.ID, entry.Service)
	return nil
}

type vaultListCmd struct{}

func (vaultListCmd) Name() string        { return "vault-list" }
func (vaultListCmd) Description() string { return "List vault entries (passwords hidden)" }
func (vaultListCmd) Usage() string       { return "vault-list" }

func (vaultListCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	entries := a.Vault.List(ctx)
	if len(entries) == 0 {
		fmt.Fprintln(Out, "Vault is empty.")
		return nil
	}
	for _, e := range entries {
		updated := time.Unix(e.UpdatedAt, 0).Format("2006-01-02 15:04")
		fmt.Fprintf(Out, "%s  %-20s %-20s updated %s\n", e.ID, e.Service, e.Username, updated)
	}
	return nil
}

type vaultGetCmd struct{}

func (vaultGetCmd) Name() string        { return "vault-get" }
func (vaultGetCmd) Description() string { return "Show one vault entry including its password" }
func (vaultGetCmd) Usage() string       { return "vault-get <id>" }

func (vaultGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	e, err := a.Vault.Get(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "service:  %s\n", e.Service)
	fmt.Fprintf(Out, "username: %s\n", e.Username)
	fmt.Fprintf(Out, "password: %s\n", e.Password)
	if e.Notes != "" {
		fmt.Fprintf(Out, "notes:    %s\n", e.Notes)
	}
	return nil
}

type vaultDelCmd struct{}

func (vaultDelCmd) Name() string        { return "vault-del" }
func (vaultDelCmd) Description() string { return "Delete a vault entry" }
func (vaultDelCmd) Usage() string       { return "vault-del <id>" }

func (vaultDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := a.Vault.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Deleted.")
	return nil
}

func init() {
	RegisterCmd(vaultAddCmd{})
	RegisterCmd(vaultListCmd{})
	RegisterCmd(vaultGetCmd{})
	RegisterCmd(vaultDelCmd{})
}

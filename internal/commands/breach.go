package commands

import (
	"context"
	"fmt"
	"os"

	"passliss/internal/breach"
	"passliss/internal/config"
)

type breachCmd struct{}

func (breachCmd) Name() string        { return "breach" }
func (breachCmd) Description() string { return "Check a password against known breaches (k-anonymity)" }
func (breachCmd) Usage() string       { return "breach <password>" }

func (breachCmd) Run(ctx context.Context, _ *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	// endpoint override mainly for self-hosted mirrors
	client := breach.NewClient(os.Getenv("PASSLISS_BREACH_URL"))
	count, err := client.Count(ctx, args[0])
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(Out, "Not found in known breaches.")
		return nil
	}
	fmt.Fprintf(Out, "Found in breaches %d times. Do not use this password.\n", count)
	return nil
}

func init() { RegisterCmd(breachCmd{}) }

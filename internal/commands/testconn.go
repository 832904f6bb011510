package commands

import (
	"context"
	"fmt"

	"passliss/internal/config"
	"passliss/internal/storage"
)

type testConnCmd struct{}

func (testConnCmd) Name() string        { return "test-conn" }
func (testConnCmd) Description() string { return "Test the configured sync backend connection" }
func (testConnCmd) Usage() string       { return "test-conn" }

func (testConnCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	conn := a.settings.DbConnection
	if conn.Type == "" {
		fmt.Fprintln(Out, "No sync backend configured. Use: settings sync <type> <url> [apiKey]")
		return nil
	}
	res := storage.TestConnection(ctx, conn)
	if res.Success {
		fmt.Fprintf(Out, "OK: %s\n", res.Message)
	} else {
		fmt.Fprintf(Out, "FAILED: %s\n", res.Message)
	}
	if res.Details != "" {
		fmt.Fprintf(Out, "  details: %s\n", res.Details)
	}
	return nil
}

func init() { RegisterCmd(testConnCmd{}) }

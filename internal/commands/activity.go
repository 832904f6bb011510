package commands

import (
	"context"
	"fmt"
	"time"

	"passliss/internal/config"
	"passliss/internal/strength"
)

type activityCmd struct{}

func (activityCmd) Name() string        { return "activity" }
func (activityCmd) Description() string { return "Show the generation activity log" }
func (activityCmd) Usage() string       { return "activity" }

func (activityCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	entries := a.Activity.List(ctx)
	if len(entries) == 0 {
		fmt.Fprintln(Out, "No activity yet.")
		return nil
	}
	for _, e := range entries {
		report := strength.Analyze(e.Content)
		date := time.Unix(e.Date, 0).Format("2006-01-02 15:04")
		fmt.Fprintf(Out, "%s  %-32s %s\n", date, e.Content, report.Tier)
	}
	return nil
}

func init() { RegisterCmd(activityCmd{}) }

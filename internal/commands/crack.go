package commands

import (
	"context"
	"fmt"

	"passliss/internal/config"
	"passliss/internal/strength"
)

type crackCmd struct{}

func (crackCmd) Name() string        { return "crack" }
func (crackCmd) Description() string { return "Estimate time-to-crack for a password" }
func (crackCmd) Usage() string       { return "crack <password>" }

func (crackCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	report := strength.Analyze(args[0])
	fmt.Fprintf(Out, "entropy: %.1f bits\n", report.EntropyBits)
	for _, est := range strength.EstimateCrackTimes(report.EntropyBits) {
		fmt.Fprintf(Out, "  %-40s %s\n", est.Scenario, est.HumanTime)
	}
	return nil
}

func init() { RegisterCmd(crackCmd{}) }

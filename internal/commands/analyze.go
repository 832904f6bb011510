package commands

import (
	"context"
	"fmt"

	"passliss/internal/config"
	"passliss/internal/strength"
)

type analyzeCmd struct{}

func (analyzeCmd) Name() string        { return "analyze" }
func (analyzeCmd) Description() string { return "Analyze the strength of a password" }
func (analyzeCmd) Usage() string       { return "analyze <password>" }

func (analyzeCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	r := strength.Analyze(args[0])
	fmt.Fprintf(Out, "length:    %d\n", r.Length)
	fmt.Fprintf(Out, "lowercase: %d\n", r.LowercaseCount)
	fmt.Fprintf(Out, "uppercase: %d\n", r.UppercaseCount)
	fmt.Fprintf(Out, "digits:    %d\n", r.DigitCount)
	fmt.Fprintf(Out, "special:   %d\n", r.SpecialCount)
	fmt.Fprintf(Out, "entropy:   %.1f bits\n", r.EntropyBits)
	fmt.Fprintf(Out, "score:     %d/100\n", r.Score)
	fmt.Fprintf(Out, "tier:      %s\n", r.Tier)
	return nil
}

func init() { RegisterCmd(analyzeCmd{}) }

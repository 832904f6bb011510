package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"passliss/internal/config"
	"passliss/internal/generator"
	"passliss/internal/strength"
)

type generateCmd struct{}

func (generateCmd) Name() string { return "generate" }
func (generateCmd) Description() string {
	return "Generate passwords (explicit classes, strength tier or saved preset)"
}
func (generateCmd) Usage() string {
	return "generate [<length> <classes> [count] | tier <tier> | preset <name>]"
}

// tierNames maps CLI spellings to tiers.
var tierNames = map[string]strength.Tier{
	"very-weak":   strength.TierVeryWeak,
	"weak":        strength.TierWeak,
	"moderate":    strength.TierModerate,
	"strong":      strength.TierStrong,
	"very-strong": strength.TierVeryStrong,
}

func (generateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	pools := generator.ResolvePools(a.customChars())
	count := 1
	var passwords []string

	switch {
	case len(args) == 0:
		def := a.settings.DefaultPassword
		req := generator.ExplicitRequest{
			Length:  def.Length,
			Lower:   def.IncludeLower,
			Upper:   def.IncludeUpper,
			Digits:  def.IncludeDigits,
			Special: def.IncludeSpecial,
		}
		pw, err := generator.Generate(req, pools)
		if err != nil {
			return err
		}
		passwords = []string{pw}

	case args[0] == "tier":
		if len(args) != 2 {
			return ErrUsage
		}
		tier, ok := tierNames[strings.ToLower(args[1])]
		if !ok {
			return fmt.Errorf("unknown tier %q (expected: very-weak|weak|moderate|strong|very-strong)", args[1])
		}
		pw, err := generator.GenerateByTier(tier, pools)
		if err != nil {
			return err
		}
		passwords = []string{pw}

	case args[0] == "preset":
		if len(args) != 2 {
			return ErrUsage
		}
		preset, err := a.Presets.GetByName(ctx, args[1])
		if err != nil {
			return err
		}
		pw, err := generator.GenerateFromPreset(preset, pools)
		if err != nil {
			return err
		}
		passwords = []string{pw}

	default:
		if len(args) < 2 || len(args) > 3 {
			return ErrUsage
		}
		length, err := strconv.Atoi(args[0])
		if err != nil {
			return ErrUsage
		}
		req, err := parseClasses(args[1])
		if err != nil {
			return err
		}
		req.Length = length
		if len(args) == 3 {
			count, err = strconv.Atoi(args[2])
			if err != nil {
				return ErrUsage
			}
		}
		passwords, err = generator.GenerateBatch(req, pools, count)
		if err != nil {
			return err
		}
	}

	for _, pw := range passwords {
		report := strength.Analyze(pw)
		fmt.Fprintln(Out, pw)
		fmt.Fprintf(Out, "  strength: %s (score %d, %.1f bits)\n", report.Tier, report.Score, report.EntropyBits)
		a.Activity.Add(ctx, pw)
	}
	return nil
}

// parseClasses turns a class string like "lud" into an explicit request.
// Letters: l(ower), u(pper), d(igits), s(pecial).
func parseClasses(classes string) (generator.ExplicitRequest, error) {
	var req generator.ExplicitRequest
	for _, c := range strings.ToLower(classes) {
		switch c {
		case 'l':
			req.Lower = true
		case 'u':
			req.Upper = true
		case 'd':
			req.Digits = true
		case 's':
			req.Special = true
		default:
			return req, fmt.Errorf("unknown class %q (expected letters from \"luds\")", c)
		}
	}
	return req, nil
}

func init() { RegisterCmd(generateCmd{}) }

package commands

import (
	"context"
	"fmt"
	"strconv"

	"passliss/internal/config"
	"passliss/internal/model"
)

type presetSaveCmd struct{}

func (presetSaveCmd) Name() string        { return "preset-save" }
func (presetSaveCmd) Description() string { return "Create or update a generation preset" }
func (presetSaveCmd) Usage() string       { return "preset-save <name> <length> <classes>" }

func (presetSaveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	length, err := strconv.Atoi(args[1])
	if err != nil || length < 1 {
		return ErrUsage
	}
	req, err := parseClasses(args[2])
	if err != nil {
		return err
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	preset := model.PasswordPreset{
		Name:           args[0],
		Length:         length,
		IncludeLower:   req.Lower,
		IncludeUpper:   req.Upper,
		IncludeDigits:  req.Digits,
		IncludeSpecial: req.Special,
	}
	// editing keeps the existing id
	if existing, err := a.Presets.GetByName(ctx, preset.Name); err == nil {
		preset.ID = existing.ID
	}
	saved, err := a.Presets.Save(ctx, preset)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved preset %s (%s)\n", saved.Name, saved.ID)
	return nil
}

type presetListCmd struct{}

func (presetListCmd) Name() string        { return "preset-list" }
func (presetListCmd) Description() string { return "List saved generation presets" }
func (presetListCmd) Usage() string       { return "preset-list" }

func (presetListCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	presets := a.Presets.List(ctx)
	if len(presets) == 0 {
		fmt.Fprintln(Out, "No presets.")
		return nil
	}
	for _, p := range presets {
		classes := ""
		if p.IncludeLower {
			classes += "l"
		}
		if p.IncludeUpper {
			classes += "u"
		}
		if p.IncludeDigits {
			classes += "d"
		}
		if p.IncludeSpecial {
			classes += "s"
		}
		fmt.Fprintf(Out, "%s  %-20s length=%d classes=%s\n", p.ID, p.Name, p.Length, classes)
	}
	return nil
}

type presetDelCmd struct{}

func (presetDelCmd) Name() string        { return "preset-del" }
func (presetDelCmd) Description() string { return "Delete a generation preset" }
func (presetDelCmd) Usage() string       { return "preset-del <id>" }

func (presetDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := a.Presets.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Deleted.")
	return nil
}

func init() {
	RegisterCmd(presetSaveCmd{})
	RegisterCmd(presetListCmd{})
	RegisterCmd(presetDelCmd{})
}

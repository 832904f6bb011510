package commands

import (
	"context"
	"fmt"
	"strings"

	"passliss/internal/config"
	"passliss/internal/model"
)

type settingsCmd struct{}

func (settingsCmd) Name() string        { return "settings" }
func (settingsCmd) Description() string { return "Show or change settings, including sync" }
func (settingsCmd) Usage() string {
	return "settings [sync <supabase|firebase|custom> <url> [apiKey] | sync off | default-length <n>]"
}

func (settingsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	a, done, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if len(args) == 0 {
		printSettings(a.settings)
		return nil
	}

	// every mutation rebuilds the whole settings value and saves it
	settings := a.settings
	switch args[0] {
	case "sync":
		switch {
		case len(args) == 2 && args[1] == "off":
			settings.DbConnection.Enabled = false
		case len(args) == 3 || len(args) == 4:
			backendType := strings.ToLower(args[1])
			switch backendType {
			case model.BackendSupabase, model.BackendFirebase, model.BackendCustom:
			default:
				return fmt.Errorf("unknown backend type %q", args[1])
			}
			apiKey := ""
			if len(args) == 4 {
				apiKey = args[3]
			}
			settings.DbConnection = model.DbConnectionConfig{
				Type: backendType, URL: args[2], APIKey: apiKey, Enabled: true,
			}
		default:
			return ErrUsage
		}
	case "default-length":
		if len(args) != 2 {
			return ErrUsage
		}
		var n int
		if _, err := fmt.Sscanf(args[1], "%d", &n); err != nil || n < 1 {
			return ErrUsage
		}
		settings.DefaultPassword.Length = n
	default:
		return ErrUsage
	}

	if err := a.Settings.Save(ctx, settings); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Settings saved.")
	return nil
}

func printSettings(s model.Settings) {
	fmt.Fprintf(Out, "default password: length=%d lower=%t upper=%t digits=%t special=%t\n",
		s.DefaultPassword.Length, s.DefaultPassword.IncludeLower, s.DefaultPassword.IncludeUpper,
		s.DefaultPassword.IncludeDigits, s.DefaultPassword.IncludeSpecial)
	if s.DbConnection.Enabled {
		fmt.Fprintf(Out, "sync: %s %s\n", s.DbConnection.Type, s.DbConnection.URL)
	} else {
		fmt.Fprintln(Out, "sync: off")
	}
}

func init() { RegisterCmd(settingsCmd{}) }

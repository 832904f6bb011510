package commands

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"passliss/internal/config"
	"passliss/internal/crypto"
	"passliss/internal/logger"
	"passliss/internal/model"
	"passliss/internal/service"
	"passliss/internal/storage"
)

// app wires the store and services a command needs. Close flushes pending
// remote mirrors and releases the cache.
type app struct {
	store    *storage.Store
	settings model.Settings
	log      *zap.SugaredLogger

	Settings *service.SettingsService
	Vault    *service.VaultService
	Presets  *service.PresetService
	Activity *service.ActivityService
}

// openApp opens the local cache under the configured data dir, loads settings
// from it and builds the keyed store with whatever backend the settings
// enable. Settings are read through a local-only store first: the sync
// configuration itself must be available before any backend exists.
func openApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	local, _, err := storage.OpenLocal(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open local cache: %w", err)
	}
	if err := local.Migrate(); err != nil {
		_ = local.Close()
		return nil, nil, fmt.Errorf("migrate local cache: %w", err)
	}

	lg := logger.New()

	bootStore := storage.New(local, nil, nil, lg)
	settings := service.NewSettingsService(bootStore).Load(ctx)

	backend, err := storage.BackendFromSettings(settings.DbConnection)
	if err != nil {
		// a broken sync config degrades to local-only, it never blocks the CLI
		lg.Warnw("ignoring sync configuration", "error", err)
		backend = nil
	}

	var cipher *crypto.Cipher
	if pass := os.Getenv("PASSLISS_SYNC_PASSPHRASE"); pass != "" {
		cipher, err = crypto.New(pass)
		if err != nil {
			_ = local.Close()
			return nil, nil, err
		}
	}

	store := storage.New(local, backend, cipher, lg)
	a := &app{
		store:    store,
		settings: settings,
		log:      lg,
		Settings: service.NewSettingsService(store),
		Vault:    service.NewVaultService(store),
		Presets:  service.NewPresetService(store),
		Activity: service.NewActivityService(store),
	}
	closeFn := func() {
		store.Flush()
		_ = local.Close()
		_ = lg.Sync()
	}
	return a, closeFn, nil
}

// pools resolves the generation pools from the loaded settings.
func (a *app) customChars() *model.CustomCharacters {
	return &a.settings.CustomChars
}

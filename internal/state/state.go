// Package state assembles the pieces every command needs: preferences, the
// resolved vault, and the note store.
package state

import (
	"log/slog"
	"os"

	"github.com/Paintersrp/t2/internal/prefs"
	"github.com/Paintersrp/t2/internal/theme"
	"github.com/Paintersrp/t2/internal/vault"
)

type State struct {
	Prefs  prefs.UserConfig
	Theme  theme.Theme
	Vault  string
	Store  *vault.Store
	Logger *slog.Logger
}

// New loads preferences, mirrors them into viper, resolves the vault path
// against the optional override, and builds the store.
func New(vaultOverride string) (*State, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := prefs.Load()
	prefs.SyncViper(cfg)

	vaultPath := vault.ResolvePath(vaultOverride)
	store, err := vault.NewStore(vaultPath, logger)
	if err != nil {
		return nil, err
	}

	return &State{
		Prefs:  cfg,
		Theme:  theme.Get(cfg.Theme),
		Vault:  vaultPath,
		Store:  store,
		Logger: logger,
	}, nil
}

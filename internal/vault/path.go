package vault

import (
	"os"
	"path/filepath"

	"github.com/Paintersrp/t2/internal/constants"
	"github.com/Paintersrp/t2/internal/prefs"
)

// ResolvePath determines the effective vault directory. Resolution order,
// first match wins: the explicit override, the stored preferences, the
// NOTES_VAULT and VAULT_PATH environment variables, and finally
// ~/.notes. It has no side effects and always returns an absolute path.
func ResolvePath(override string) string {
	if override != "" {
		return absolute(override)
	}

	if cfg := prefs.Load(); cfg.VaultPath != "" {
		return absolute(cfg.VaultPath)
	}

	for _, env := range []string{constants.EnvVault, constants.EnvVaultPath} {
		if p := os.Getenv(env); p != "" {
			return absolute(p)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return absolute(constants.DefaultVaultDir)
	}
	return filepath.Join(home, constants.DefaultVaultDir)
}

func absolute(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

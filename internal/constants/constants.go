package constants

const (
	Version = `0.1.0`

	// Per-user preferences location, relative to the home directory.
	ConfigDir  = `.t2`
	ConfigFile = `config.json`

	// Vault layout.
	NotesDir        = `notes`
	VaultMarkerFile = `t2.config`

	// Environment overrides for the vault location, checked in order.
	EnvVault     = `NOTES_VAULT`
	EnvVaultPath = `VAULT_PATH`

	// Default vault directory, relative to the home directory.
	DefaultVaultDir = `.notes`
)

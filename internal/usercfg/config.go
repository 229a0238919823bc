package usercfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/errors"
)

// ErrNotConfigured is returned when no config file exists and no env vars are set.
var ErrNotConfigured = fmt.Errorf("vgpc is not configured; run: vgpc setup")

// Threshold bounds enforced on load; values outside this range make the
// matcher either pair everything or nothing.
const (
	MinThreshold = 0.3
	MaxThreshold = 0.95
)

// IsConfigured returns true if a config file exists or essential env vars are set.
func IsConfigured() bool {
	if os.Getenv("VGPC_TARGET_DIR") != "" && os.Getenv("VGPC_DOWNLOADS_DIR") != "" {
		return true
	}
	configPath := Path()
	legacyPath := LegacyPath()
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return true
		}
	}
	if legacyPath != "" {
		if _, err := os.Stat(legacyPath); err == nil {
			return true
		}
	}
	return false
}

type Config struct {
	SchemaVersion   int           `toml:"schema_version,omitempty"`
	TargetDir       string        `toml:"target_dir"`
	DownloadsDir    string        `toml:"downloads_dir"`
	StrictThreshold float64       `toml:"strict_threshold"`
	UseTrash        *bool         `toml:"use_trash"`
	UIPrefs         UIPreferences `toml:"ui_prefs,omitempty"`
}

type UIPreferences struct {
	LastFilter  string `toml:"last_filter,omitempty"`
	FuzzyFilter bool   `toml:"fuzzy_filter,omitempty"`
}

const CurrentSchemaVersion = 1

func Path() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	// Prefer XDG-compliant path: ~/.config/vgpc/config.toml
	return filepath.Join(homeDir, ".config", "vgpc", "config.toml")
}

func LegacyPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	// Legacy path for backward compatibility
	return filepath.Join(homeDir, ".config", "vgpc.toml")
}

func Load() (Config, error) {
	configPath := Path()
	legacyPath := LegacyPath()

	if configPath == "" || legacyPath == "" {
		return getDefaults(), errors.NewConfigError("load", fmt.Errorf("unable to determine home directory"))
	}

	var actualPath string
	var warnLegacy bool

	// Check XDG-compliant path first
	if _, err := os.Stat(configPath); err == nil {
		actualPath = configPath
	} else if _, err := os.Stat(legacyPath); err == nil {
		// Fall back to legacy path if XDG path doesn't exist
		actualPath = legacyPath
		warnLegacy = true
	} else {
		// Neither path exists -- not configured
		return getDefaults(), ErrNotConfigured
	}

	var config Config
	if _, err := toml.DecodeFile(actualPath, &config); err != nil {
		return getDefaults(), errors.NewConfigError("load", fmt.Errorf("failed to decode config file: %v", err))
	}

	// Warn about legacy path usage (once per load)
	if warnLegacy {
		fmt.Fprintf(os.Stderr, "Warning: Using legacy config path %s. Consider moving to %s\n", legacyPath, configPath)
	}

	// Apply migrations if needed
	migratedConfig := migrateConfig(config)

	return mergeWithDefaults(migratedConfig), nil
}

func Save(config Config) error {
	configPath := Path()
	if configPath == "" {
		return fmt.Errorf("unable to determine home directory")
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	return nil
}

func GetRuntimeConfig() Config {
	config, err := Load()
	if err != nil && err != ErrNotConfigured {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		config = getDefaults()
	}

	// Apply environment variable overlays
	return applyEnvOverlays(config)
}

func mergeWithDefaults(config Config) Config {
	// Always ensure we have the current schema version
	config.SchemaVersion = CurrentSchemaVersion

	if config.StrictThreshold == 0 {
		config.StrictThreshold = getDefaults().StrictThreshold
	}
	config.StrictThreshold = ClampThreshold(config.StrictThreshold)

	// UseTrash defaults to true when not explicitly set
	if config.UseTrash == nil {
		t := true
		config.UseTrash = &t
	}

	// TargetDir and DownloadsDir are left empty if not in the config
	// file. The caller must handle empty values (prompt for vgpc setup).

	return config
}

// TrashEnabled returns whether removed items go to the trash instead of
// being deleted permanently.
func (c Config) TrashEnabled() bool {
	return c.UseTrash == nil || *c.UseTrash
}

// ClampThreshold forces a threshold into the supported range.
func ClampThreshold(v float64) float64 {
	if v < MinThreshold {
		return MinThreshold
	}
	if v > MaxThreshold {
		return MaxThreshold
	}
	return v
}

// applyEnvOverlays applies environment variable overlays to the config
func applyEnvOverlays(config Config) Config {
	if v := os.Getenv("VGPC_TARGET_DIR"); v != "" {
		config.TargetDir = v
	}

	if v := os.Getenv("VGPC_DOWNLOADS_DIR"); v != "" {
		config.DownloadsDir = v
	}

	if v := os.Getenv("VGPC_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring invalid VGPC_THRESHOLD %q\n", v)
		} else {
			config.StrictThreshold = ClampThreshold(threshold)
		}
	}

	if v := os.Getenv("VGPC_NO_TRASH"); v == "1" || v == "true" {
		f := false
		config.UseTrash = &f
	}

	return config
}

// migrateConfig performs in-memory migration of config from older schema versions
func migrateConfig(config Config) Config {
	originalVersion := config.SchemaVersion

	// Migration from version 0 (no schema_version field) to version 1
	if originalVersion == 0 {
		// Version 0 configs don't have schema_version field
		// Current structure is already compatible, just need to set version
		config.SchemaVersion = 1

		if config.TargetDir != "" || config.DownloadsDir != "" || config.StrictThreshold != 0 {
			fmt.Fprintf(os.Stderr, "Info: Migrated config from schema version 0 to %d\n", config.SchemaVersion)
		}
	}

	// Future migrations would go here:
	// if originalVersion < 2 { ... }

	return config
}

// MigrateAndSave loads the config, applies migrations, and saves it back to disk
// This is used by the `vgpc config migrate` command
func MigrateAndSave() error {
	configPath := Path()
	legacyPath := LegacyPath()

	if configPath == "" || legacyPath == "" {
		return fmt.Errorf("unable to determine home directory")
	}

	var actualPath string

	// Check XDG-compliant path first
	if _, err := os.Stat(configPath); err == nil {
		actualPath = configPath
	} else if _, err := os.Stat(legacyPath); err == nil {
		actualPath = legacyPath
	} else {
		return fmt.Errorf("no config file found to migrate")
	}

	var rawConfig Config
	if _, err := toml.DecodeFile(actualPath, &rawConfig); err != nil {
		return fmt.Errorf("failed to decode config file: %v", err)
	}

	originalVersion := rawConfig.SchemaVersion
	if originalVersion == CurrentSchemaVersion {
		return fmt.Errorf("config is already at current schema version %d", CurrentSchemaVersion)
	}

	// Now apply the full Load() process which includes migration and merging
	config, err := Load()
	if err != nil {
		return fmt.Errorf("failed to load config for migration: %v", err)
	}

	// Save the migrated config
	err = Save(config)
	if err != nil {
		return fmt.Errorf("failed to save migrated config: %v", err)
	}

	fmt.Printf("Successfully migrated config from schema version %d to %d\n", originalVersion, config.SchemaVersion)
	return nil
}

// SaveUIPrefs saves only the UI preferences to the config file
// This is lightweight and can be called frequently without impacting other config values
func SaveUIPrefs(prefs UIPreferences) error {
	config, err := Load()
	if err != nil {
		config = Config{
			SchemaVersion:   CurrentSchemaVersion,
			StrictThreshold: getDefaults().StrictThreshold,
		}
	}

	config.UIPrefs = prefs
	return Save(config)
}

// GetUIPrefs returns the current UI preferences from the runtime config
func GetUIPrefs() UIPreferences {
	// Allow ignoring UI prefs via env for troubleshooting
	if os.Getenv("VGPC_IGNORE_UI_PREFS") == "1" {
		return UIPreferences{}
	}
	config := GetRuntimeConfig()
	return config.UIPrefs
}

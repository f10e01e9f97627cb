package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/agentx-labs/toolpath/internal/branding"
	"github.com/agentx-labs/toolpath/internal/platform"
	"github.com/agentx-labs/toolpath/internal/probe"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyNodeLocation   = "node_location"
	KeyClaudeLocation = "claude_location"
	KeyDebugContext   = "debug_context"
	KeyProbeTimeout   = "probe_timeout"
)

// Keys lists every recognized setting.
var Keys = []string{KeyNodeLocation, KeyClaudeLocation, KeyDebugContext, KeyProbeTimeout}

// ErrUnknownKey is returned by Set for keys outside Keys.
var ErrUnknownKey = errors.New("unknown setting")

// Settings is the typed view of the loaded configuration.
type Settings struct {
	NodeLocation   string        `json:"nodeLocation,omitempty"`
	ClaudeLocation string        `json:"claudeLocation,omitempty"`
	DebugContext   bool          `json:"debugContext"`
	ProbeTimeout   time.Duration `json:"probeTimeout"`
}

// Dir returns the settings directory: $TOOLPATH_HOME when set, otherwise
// ~/.toolpath.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load points viper at the settings file and environment. A missing file is
// not an error; an unreadable or malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNodeLocation, "")
	viper.SetDefault(KeyClaudeLocation, "")
	viper.SetDefault(KeyDebugContext, false)
	viper.SetDefault(KeyProbeTimeout, probe.DefaultTimeout.String())

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a setting as a string. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the loaded settings. An unparsable or non-positive probe
// timeout falls back to probe.DefaultTimeout.
func Current() Settings {
	timeout := viper.GetDuration(KeyProbeTimeout)
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	return Settings{
		NodeLocation:   strings.TrimSpace(viper.GetString(KeyNodeLocation)),
		ClaudeLocation: strings.TrimSpace(viper.GetString(KeyClaudeLocation)),
		DebugContext:   viper.GetBool(KeyDebugContext),
		ProbeTimeout:   timeout,
	}
}

// Set validates and stores a setting, then rewrites the settings file with
// owner-only permissions.
func Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	typed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, typed)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := platform.Chmod(configFile, 0o600); err != nil {
		return fmt.Errorf("restricting %s: %w", configFile, err)
	}
	return nil
}

func parseValue(key, value string) (any, error) {
	if !slices.Contains(Keys, key) {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	value = strings.TrimSpace(value)
	switch key {
	case KeyDebugContext:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false: %w", key, err)
		}
		return b, nil
	case KeyProbeTimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be a duration such as 2s: %w", key, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", key, value)
		}
		return d.String(), nil
	default:
		return value, nil
	}
}

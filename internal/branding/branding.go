// Package branding holds the identity values baked into the binary from the
// embedded branding.yaml.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "toolpath",
			DisplayName: "Toolpath",
			Description: "Locate the node runtime and claude CLI",
			HomeDir:     ".toolpath",
			EnvPrefix:   "TOOLPATH",
			GoModule:    "github.com/agentx-labs/toolpath",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name.
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (".toolpath").
func HomeDir() string { load(); return defaults.HomeDir }

func EnvPrefix() string { load(); return defaults.EnvPrefix }

func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name: EnvVar("node_location")
// is "TOOLPATH_NODE_LOCATION".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

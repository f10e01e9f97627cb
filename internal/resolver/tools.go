package resolver

import "github.com/agentx-labs/toolpath/internal/platform"

// Tool describes an executable the resolver knows how to find. Paths are
// slash-separated; a leading "~/" refers to the home directory of whichever
// filesystem is being probed.
type Tool struct {
	// Name is the bare command name used for lookup and as the fallback.
	Name string
	// VersionSubPath is the tool's location inside an nvm version directory.
	VersionSubPath string
	// PrefixSubPath is the tool's location under npm's global prefix.
	PrefixSubPath string

	native    func(goos string) []string
	subsystem []string
}

// ConventionalPaths returns the well-known install locations for s, in the
// order they are tried.
func (t Tool) ConventionalPaths(s platform.Strategy) []string {
	switch s.Kind {
	case platform.Native:
		return t.native(s.GOOS)
	case platform.Subsystem:
		return append([]string(nil), t.subsystem...)
	default:
		return nil
	}
}

// Interpreter is the node runtime.
var Interpreter = Tool{
	Name:           "node",
	VersionSubPath: "bin/node",
	PrefixSubPath:  "bin/node",
	native: func(goos string) []string {
		if goos == "darwin" {
			return []string{
				"/usr/local/bin/node",
				"/opt/homebrew/bin/node",
				"/usr/bin/node",
				"~/.nvm/current/bin/node",
			}
		}
		return []string{
			"/usr/local/bin/node",
			"/usr/bin/node",
			"~/.nvm/current/bin/node",
		}
	},
	subsystem: []string{
		"/usr/local/bin/node",
		"/usr/bin/node",
		"~/.nvm/current/bin/node",
		"/usr/local/nodejs/bin/node",
	},
}

// CLITool is the claude CLI, an npm package that runs on Interpreter.
var CLITool = Tool{
	Name:           "claude",
	VersionSubPath: "bin/claude",
	PrefixSubPath:  "bin/claude",
	native: func(goos string) []string {
		paths := []string{
			"~/.claude/local/node_modules/.bin/claude",
			"/usr/local/lib/node_modules/.bin/claude",
			"/usr/local/bin/claude",
		}
		if goos == "darwin" {
			paths = append(paths, "/opt/homebrew/bin/claude")
		}
		return append(paths,
			"~/.npm-global/bin/claude",
			"~/.local/share/npm/bin/claude",
		)
	},
	subsystem: []string{
		"/usr/local/bin/claude",
		"~/.claude/local/node_modules/.bin/claude",
		"~/.npm-global/bin/claude",
		"~/.local/share/npm/bin/claude",
	},
}

// Tools lists the executables resolved on every run, in probe order.
func Tools() []Tool {
	return []Tool{Interpreter, CLITool}
}

package resolver

import "strings"

// ResolvedPaths is the outcome of a resolution run.
type ResolvedPaths struct {
	// Interpreter is the node executable: an absolute path or "node".
	Interpreter string `json:"interpreter"`
	// Tool is the claude executable: an absolute path or "claude".
	Tool string `json:"tool"`
	// UsesSubsystem is true when both paths live inside WSL and every
	// invocation must be prefixed with SubsystemPrefix.
	UsesSubsystem bool `json:"usesSubsystem"`
	// SubsystemPrefix is the launcher argv, set only when UsesSubsystem.
	SubsystemPrefix []string `json:"subsystemPrefix,omitempty"`
}

func (p ResolvedPaths) clone() ResolvedPaths {
	if p.SubsystemPrefix != nil {
		p.SubsystemPrefix = append([]string(nil), p.SubsystemPrefix...)
	}
	return p
}

// PathFor returns the resolved path of t.
func (p ResolvedPaths) PathFor(t Tool) string {
	if t.Name == Interpreter.Name {
		return p.Interpreter
	}
	return p.Tool
}

// Degraded reports whether t fell back to its bare command name.
func (p ResolvedPaths) Degraded(t Tool) bool {
	return p.PathFor(t) == t.Name
}

// Command returns the argv that runs the CLI tool with args, including the
// subsystem prefix when one is required.
func (p ResolvedPaths) Command(args ...string) []string {
	argv := make([]string, 0, len(p.SubsystemPrefix)+1+len(args))
	if p.UsesSubsystem {
		argv = append(argv, p.SubsystemPrefix...)
	}
	argv = append(argv, p.Tool)
	return append(argv, args...)
}

// Overrides are user-supplied paths that bypass probing. Empty fields are
// treated as not supplied.
type Overrides struct {
	Interpreter string
	Tool        string
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return strings.TrimSpace(o.Interpreter) == "" && strings.TrimSpace(o.Tool) == ""
}

func (o Overrides) forTool(t Tool) string {
	if t.Name == Interpreter.Name {
		return strings.TrimSpace(o.Interpreter)
	}
	return strings.TrimSpace(o.Tool)
}

// Source names the probe step that produced a path.
type Source string

const (
	SourceOverride       Source = "override"
	SourceLookup         Source = "lookup"
	SourceConventional   Source = "conventional"
	SourceVersionManager Source = "version-manager"
	SourcePackagePrefix  Source = "package-prefix"
	SourceFallback       Source = "fallback"
)

// Attempt records one probe made while resolving a tool.
type Attempt struct {
	Source Source `json:"source"`
	// Detail describes what was probed: a command line or candidate path.
	Detail string `json:"detail,omitempty"`
	Path   string `json:"path,omitempty"`
	OK     bool   `json:"ok"`
}

package resolver

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/toolpath/internal/probe"
	"github.com/spf13/afero"
)

// nvmVersionsDir is where nvm keeps one directory per installed node.
const nvmVersionsDir = "~/.nvm/versions/node"

// existsSentinel is echoed by the remote file test. Only an exact match
// counts, so a remote shell that fails quietly is never read as success.
const existsSentinel = "exists"

// Host is the filesystem and process namespace a probe chain runs against.
// Every method reports failure through its bool result.
type Host interface {
	// LookPath asks the platform where name is installed.
	LookPath(ctx context.Context, name string) (string, bool)
	// IsFile reports whether p exists as a regular file.
	IsFile(ctx context.Context, p string) bool
	// ListDir returns the entry names of dir.
	ListDir(ctx context.Context, dir string) ([]string, bool)
	// PackagePrefix returns npm's global install prefix.
	PackagePrefix(ctx context.Context) (string, bool)
	// VersionManagerDir returns the nvm versions directory.
	VersionManagerDir() string
	// Expand turns a conventional "~/" path into the form probed and returned.
	Expand(p string) string
	// Join joins path elements using the host's separator.
	Join(elem ...string) string
}

// localHost probes the machine the process runs on.
type localHost struct {
	fs       afero.Fs
	runner   probe.Runner
	lookPath func(string) (string, error)
	getenv   func(string) string
	home     string
}

func (h *localHost) LookPath(_ context.Context, name string) (string, bool) {
	p, err := h.lookPath(name)
	if err != nil {
		return "", false
	}
	p = strings.TrimSpace(p)
	return p, p != ""
}

func (h *localHost) IsFile(_ context.Context, p string) bool {
	info, err := h.fs.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func (h *localHost) ListDir(_ context.Context, dir string) ([]string, bool) {
	entries, err := afero.ReadDir(h.fs, dir)
	if err != nil {
		return nil, false
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, true
}

func (h *localHost) PackagePrefix(ctx context.Context) (string, bool) {
	return packagePrefix(h.runner.Output(ctx, "npm", "config", "get", "prefix"))
}

// VersionManagerDir honours NVM_DIR when it is set.
func (h *localHost) VersionManagerDir() string {
	if dir := strings.TrimSpace(h.getenv("NVM_DIR")); dir != "" {
		return filepath.Join(dir, "versions", "node")
	}
	return h.Expand(nvmVersionsDir)
}

func (h *localHost) Expand(p string) string {
	if h.home != "" && (p == "~" || strings.HasPrefix(p, "~/")) {
		return filepath.Join(h.home, filepath.FromSlash(strings.TrimPrefix(p[1:], "/")))
	}
	return filepath.FromSlash(p)
}

func (h *localHost) Join(elem ...string) string {
	parts := make([]string, len(elem))
	for i, e := range elem {
		parts[i] = filepath.FromSlash(e)
	}
	return filepath.Join(parts...)
}

// subsystemHost probes inside WSL by prefixing every command with the
// launcher argv. Paths stay in their "~/" form; the remote shell expands them.
type subsystemHost struct {
	runner probe.Runner
	prefix []string
}

func (h *subsystemHost) run(ctx context.Context, args ...string) (string, bool) {
	argv := make([]string, 0, len(h.prefix)+len(args))
	argv = append(argv, h.prefix[1:]...)
	argv = append(argv, "--")
	argv = append(argv, args...)
	return h.runner.Output(ctx, h.prefix[0], argv...)
}

func (h *subsystemHost) LookPath(ctx context.Context, name string) (string, bool) {
	out, ok := h.run(ctx, "which", name)
	if !ok {
		return "", false
	}
	out = firstLine(out)
	return out, out != ""
}

func (h *subsystemHost) IsFile(ctx context.Context, p string) bool {
	out, ok := h.run(ctx, "sh", "-c", remoteFileTest(p))
	return ok && out == existsSentinel
}

func (h *subsystemHost) ListDir(ctx context.Context, dir string) ([]string, bool) {
	out, ok := h.run(ctx, "sh", "-c", remoteList(dir))
	if !ok {
		return nil, false
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, true
}

func (h *subsystemHost) PackagePrefix(ctx context.Context) (string, bool) {
	return packagePrefix(h.run(ctx, "npm", "config", "get", "prefix"))
}

func (h *subsystemHost) VersionManagerDir() string { return nvmVersionsDir }

func (h *subsystemHost) Expand(p string) string { return p }

func (h *subsystemHost) Join(elem ...string) string { return path.Join(elem...) }

// remoteFileTest builds the shell snippet that echoes the sentinel when p is
// a regular file.
func remoteFileTest(p string) string {
	return "test -f " + shellPath(p) + " && echo " + existsSentinel
}

func remoteList(dir string) string {
	return "ls -1 " + shellPath(dir) + " 2>/dev/null"
}

// shellPath quotes p for sh while leaving a leading "~/" unquoted so the
// remote shell still performs tilde expansion.
func shellPath(p string) string {
	if p == "~" {
		return p
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return "~/" + shellQuote(rest)
	}
	return shellQuote(p)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func packagePrefix(out string, ok bool) (string, bool) {
	out = firstLine(out)
	if !ok || out == "" || out == "undefined" {
		return "", false
	}
	return out, true
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

package resolver

import (
	"context"
	"strings"

	"github.com/agentx-labs/toolpath/internal/platform"
	"go.uber.org/zap"
)

// chain runs the ordered probe steps for one tool against a Host.
type chain struct {
	host     Host
	strategy platform.Strategy
	logger   *zap.Logger
	// observe, when set, receives every attempt in order.
	observe func(Tool, Attempt)
}

// step is one link of the chain. It returns the path it found, or ok false
// to hand over to the next step.
type step func(ctx context.Context, t Tool) (string, bool)

// resolve returns the first path a step produces, or t.Name when every step
// comes up empty. It never fails.
func (c *chain) resolve(ctx context.Context, t Tool, override string) (string, Source) {
	if v := strings.TrimSpace(override); v != "" {
		c.note(t, Attempt{Source: SourceOverride, Path: v, OK: true})
		return v, SourceOverride
	}

	steps := []struct {
		source Source
		run    step
	}{
		{SourceLookup, c.lookup},
		{SourceConventional, c.conventional},
		{SourceVersionManager, c.versionManager},
		{SourcePackagePrefix, c.packagePrefix},
	}
	for _, s := range steps {
		if ctx.Err() != nil {
			break
		}
		if p, ok := s.run(ctx, t); ok {
			c.logger.Debug("resolved", zap.String("tool", t.Name), zap.String("source", string(s.source)), zap.String("path", p))
			return p, s.source
		}
	}

	c.note(t, Attempt{Source: SourceFallback, Path: t.Name, OK: true})
	c.logger.Debug("falling back to bare name", zap.String("tool", t.Name))
	return t.Name, SourceFallback
}

func (c *chain) lookup(ctx context.Context, t Tool) (string, bool) {
	p, ok := c.host.LookPath(ctx, t.Name)
	c.note(t, Attempt{Source: SourceLookup, Detail: "which " + t.Name, Path: p, OK: ok})
	return p, ok
}

func (c *chain) conventional(ctx context.Context, t Tool) (string, bool) {
	for _, candidate := range t.ConventionalPaths(c.strategy) {
		p := c.host.Expand(candidate)
		ok := c.host.IsFile(ctx, p)
		c.note(t, Attempt{Source: SourceConventional, Detail: p, OK: ok})
		if ok {
			return p, true
		}
	}
	return "", false
}

func (c *chain) versionManager(ctx context.Context, t Tool) (string, bool) {
	dir := c.host.VersionManagerDir()
	names, ok := c.host.ListDir(ctx, dir)
	if !ok {
		c.note(t, Attempt{Source: SourceVersionManager, Detail: dir})
		return "", false
	}
	latest, ok := latestVersion(names)
	if !ok {
		c.note(t, Attempt{Source: SourceVersionManager, Detail: dir})
		return "", false
	}
	p := c.host.Join(dir, latest, t.VersionSubPath)
	ok = c.host.IsFile(ctx, p)
	c.note(t, Attempt{Source: SourceVersionManager, Detail: p, OK: ok})
	if !ok {
		return "", false
	}
	return p, true
}

func (c *chain) packagePrefix(ctx context.Context, t Tool) (string, bool) {
	prefix, ok := c.host.PackagePrefix(ctx)
	if !ok {
		c.note(t, Attempt{Source: SourcePackagePrefix, Detail: "npm config get prefix"})
		return "", false
	}
	p := c.host.Join(prefix, t.PrefixSubPath)
	ok = c.host.IsFile(ctx, p)
	c.note(t, Attempt{Source: SourcePackagePrefix, Detail: p, OK: ok})
	if !ok {
		return "", false
	}
	return p, true
}

func (c *chain) note(t Tool, a Attempt) {
	if a.OK && a.Path == "" {
		a.Path = a.Detail
	}
	if c.observe != nil {
		c.observe(t, a)
	}
}

// Package resolver locates the node interpreter and the claude CLI on the
// host. Resolution walks a fixed probe chain per executable (override,
// authoritative lookup, conventional install paths, nvm versions, npm global
// prefix) and falls back to the bare command name, so it never fails for a
// missing tool. The only resolution error is platform.ErrSubsystemRequired
// on Windows hosts without WSL; a context that is already done is reported
// as its own error before any probing.
//
// A Resolver memoizes the last override-free result for its own lifetime.
// Construct one per process and share it; Invalidate drops the memo.
package resolver

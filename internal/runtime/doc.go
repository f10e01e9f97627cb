// Package runtime launches the resolved CLI tool, either directly or through
// the WSL launcher, and captures its output.
package runtime

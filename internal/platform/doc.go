// Package platform decides how executables are located on the current host.
// Classify picks one of three strategies: Native on macOS and Linux,
// Subsystem on Windows when WSL answers a status query, and Unsupported on
// Windows without WSL. It also carries the small cross-platform filesystem
// helpers the settings store needs.
package platform

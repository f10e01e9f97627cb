// Package cli defines the Cobra command tree for the toolpath CLI. Each file
// registers one top-level command with the root command. Commands delegate
// to internal packages and only handle flags, output formatting and exit
// codes.
package cli

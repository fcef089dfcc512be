// Package cli defines the Cobra command tree for the fortdoc CLI. Each file
// in this package registers one top-level command (validate, resolve,
// sources, version) with the root command. Command implementations delegate
// to the library packages for the actual work and only handle flag parsing,
// I/O formatting, and user interaction.
package cli

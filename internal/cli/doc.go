// Package cli implements the gopass command line: account commands, master
// key management and one-shot vault operations. Running it without a
// subcommand opens the terminal UI.
package cli

// Package cmd implements the tomlcheck command-line interface.  The tool
// performs a single operation - validate one TOML document and print the
// outcome as one line on stdout - so the package holds the argument parsing
// in options.go and the operation itself in check.go.
package cmd

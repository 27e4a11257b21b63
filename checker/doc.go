// Package checker implements the TOML document validation service used by
// the tomlcheck command-line interface.  The service reads a document from a
// location, attempts to decode it and reports the outcome as either nil or a
// single typed error carrying the underlying IO or decode message.
package checker

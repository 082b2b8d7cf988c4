// Package config resolves run settings for the transformer. Values come from
// command-line flags, optionally layered over a YAML settings file that is
// validated against an embedded JSON Schema before use.
package config

// Package config provides configuration loading and validation for dsbox.
//
// # Overview
//
// A Config drives the demonstration run: the logger settings, the hash
// table bucket count and hasher, and the data fed to each structure.
// DefaultConfig reproduces the reference scenario, so an empty file or no
// file at all yields the standard demo.
//
// # Loading Configuration
//
// Both YAML and TOML are accepted; the format is chosen by file extension:
//
//	cfg, err := config.LoadConfig("dsbox.yaml")
//	cfg, err := config.LoadConfig("dsbox.toml")
//
// Values not present in the file keep their defaults. Before parsing,
// ${VAR} and ${VAR:-default} are replaced with environment values:
//
//	logging:
//	  level: ${DSBOX_LOG_LEVEL:-info}
//	hashtable:
//	  buckets: 10
//	demo:
//	  words: [apple, app, banana]
//	  heapValues: [5, 3, 8, 1, 2]
//
// # Validation
//
// ValidateConfig returns every problem found as a ValidationError naming
// the offending field. An empty result means the configuration is usable.
package config

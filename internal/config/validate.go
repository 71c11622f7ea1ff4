package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateHashTableConfig(&config.HashTable)...)
	errs = append(errs, validateDemoConfig(&config.Demo)...)

	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, or error",
		})
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		dir := filepath.Dir(config.Output)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: fmt.Sprintf("directory %s does not exist", dir),
			})
		}
	}

	return errs
}

// validateHashTableConfig validates hash table configuration.
func validateHashTableConfig(config *HashTableConfig) []error {
	var errs []error

	if config.Buckets <= 0 {
		errs = append(errs, ValidationError{
			Field:   "hashtable.buckets",
			Message: "must be positive",
		})
	}

	switch config.Hasher {
	case "", HasherFNV, HasherSeeded:
	default:
		errs = append(errs, ValidationError{
			Field:   "hashtable.hasher",
			Message: "must be fnv or seeded",
		})
	}

	return errs
}

// validateDemoConfig validates the demonstration data.
func validateDemoConfig(config *DemoConfig) []error {
	var errs []error

	if len(config.HeapValues) == 0 {
		errs = append(errs, ValidationError{
			Field:   "demo.heapValues",
			Message: "at least one value is required",
		})
	}

	// Repeated keys are allowed; later entries update earlier ones.
	for i, e := range config.Entries {
		if e.Key == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("demo.entries[%d].key", i),
				Message: "key is required",
			})
		}
		if e.Value == nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("demo.entries[%d].value", i),
				Message: "value is required",
			})
		}
	}

	for i, k := range config.LookupKeys {
		if k == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("demo.lookupKeys[%d]", i),
				Message: "key must not be empty",
			})
		}
	}
	for i, k := range config.DeleteKeys {
		if k == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("demo.deleteKeys[%d]", i),
				Message: "key must not be empty",
			})
		}
	}

	return errs
}

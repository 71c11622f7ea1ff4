package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Parser errors.
var (
	ErrFileNotFound      = errors.New("configuration file not found")
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Format identifies a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadConfig loads configuration from a file path.
// It reads the file, substitutes environment variables, parses it in the
// format implied by its extension, and applies defaults for missing values.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	return ParseConfig(data, format)
}

// ParseConfig parses configuration data in the given format.
// It substitutes environment variables and applies defaults for missing
// values.
func ParseConfig(data []byte, format Format) (*Config, error) {
	data = substituteEnvVars(data)

	config := DefaultConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	case FormatTOML:
		// toml decodes into the existing backing arrays, so start the demo
		// lists empty and restore the defaults the document leaves out.
		defaults := config.Demo
		config.Demo = DemoConfig{}
		md, err := toml.Decode(string(data), config)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		restoreDemoDefaults(md, &config.Demo, &defaults)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return config, nil
}

func restoreDemoDefaults(md toml.MetaData, dc, defaults *DemoConfig) {
	if !md.IsDefined("demo", "words") {
		dc.Words = defaults.Words
	}
	if !md.IsDefined("demo", "searchWords") {
		dc.SearchWords = defaults.SearchWords
	}
	if !md.IsDefined("demo", "prefixes") {
		dc.Prefixes = defaults.Prefixes
	}
	if !md.IsDefined("demo", "heapValues") {
		dc.HeapValues = defaults.HeapValues
	}
	if !md.IsDefined("demo", "entries") {
		dc.Entries = defaults.Entries
	}
	if !md.IsDefined("demo", "lookupKeys") {
		dc.LookupKeys = defaults.LookupKeys
	}
	if !md.IsDefined("demo", "deleteKeys") {
		dc.DeleteKeys = defaults.DeleteKeys
	}
}

// Marshal encodes config in the given format.
func Marshal(config *Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(config)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if idx := strings.Index(content, ":-"); idx != -1 {
			varName := content[:idx]
			defaultVal := content[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return []byte(val)
			}
			return []byte(defaultVal)
		}

		return []byte(os.Getenv(content))
	})
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	t.Run("logging defaults", func(t *testing.T) {
		if config.Logging.Level != "info" {
			t.Errorf("expected log level 'info', got %q", config.Logging.Level)
		}
		if config.Logging.Format != "text" {
			t.Errorf("expected log format 'text', got %q", config.Logging.Format)
		}
		if config.Logging.Output != "stderr" {
			t.Errorf("expected log output 'stderr', got %q", config.Logging.Output)
		}
	})

	t.Run("hashtable defaults", func(t *testing.T) {
		if config.HashTable.Buckets != 10 {
			t.Errorf("expected 10 buckets, got %d", config.HashTable.Buckets)
		}
		if config.HashTable.Hasher != HasherFNV {
			t.Errorf("expected hasher %q, got %q", HasherFNV, config.HashTable.Hasher)
		}
	})

	t.Run("demo defaults", func(t *testing.T) {
		if diff := cmp.Diff([]string{"apple", "app", "banana"}, config.Demo.Words); diff != "" {
			t.Errorf("words mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{5, 3, 8, 1, 2}, config.Demo.HeapValues); diff != "" {
			t.Errorf("heap values mismatch (-want +got):\n%s", diff)
		}
		if len(config.Demo.Entries) != 3 {
			t.Errorf("expected 3 entries, got %d", len(config.Demo.Entries))
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		if errs := ValidateConfig(config); len(errs) != 0 {
			t.Errorf("expected default config to be valid, got %v", errs)
		}
	})
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
logging:
  level: debug
  format: json
hashtable:
  buckets: 4
demo:
  words: [go, gopher]
  heapValues: [9, 7]
  entries:
    - key: lang
      value: Go
    - key: year
      value: 2009
`)

	config, err := ParseConfig(data, FormatYAML)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.Logging.Level != "debug" || config.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", config.Logging)
	}
	if config.Logging.Output != "stderr" {
		t.Errorf("expected default output to be kept, got %q", config.Logging.Output)
	}
	if config.HashTable.Buckets != 4 {
		t.Errorf("expected 4 buckets, got %d", config.HashTable.Buckets)
	}
	if config.HashTable.Hasher != HasherFNV {
		t.Errorf("expected default hasher to be kept, got %q", config.HashTable.Hasher)
	}
	if diff := cmp.Diff([]string{"go", "gopher"}, config.Demo.Words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
	want := []EntryConfig{{Key: "lang", Value: "Go"}, {Key: "year", Value: 2009}}
	if diff := cmp.Diff(want, config.Demo.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ban"}, config.Demo.Prefixes); diff != "" {
		t.Errorf("expected default prefixes to be kept (-want +got):\n%s", diff)
	}
}

func TestParseConfigTOML(t *testing.T) {
	data := []byte(`
[logging]
level = "warn"

[hashtable]
buckets = 7
hasher = "seeded"

[demo]
heapValues = [4, 2]

[[demo.entries]]
key = "lang"
value = "Go"
`)

	config, err := ParseConfig(data, FormatTOML)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.Logging.Level != "warn" {
		t.Errorf("expected level 'warn', got %q", config.Logging.Level)
	}
	if config.HashTable.Buckets != 7 || config.HashTable.Hasher != HasherSeeded {
		t.Errorf("unexpected hashtable config: %+v", config.HashTable)
	}
	if diff := cmp.Diff([]int{4, 2}, config.Demo.HeapValues); diff != "" {
		t.Errorf("heap values mismatch (-want +got):\n%s", diff)
	}
	if len(config.Demo.Entries) != 1 || config.Demo.Entries[0].Value != "Go" {
		t.Errorf("unexpected entries: %+v", config.Demo.Entries)
	}
}

func TestParseConfigPartialEntry(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", "demo:\n  entries:\n    - key: x\n", FormatYAML},
		{"toml", "[[demo.entries]]\nkey = \"x\"\n", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseConfig([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("ParseConfig failed: %v", err)
			}

			want := []EntryConfig{{Key: "x"}}
			if diff := cmp.Diff(want, config.Demo.Entries); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(DefaultConfig().Demo.Words, config.Demo.Words); diff != "" {
				t.Errorf("expected default words to be kept (-want +got):\n%s", diff)
			}

			var fields []string
			for _, err := range ValidateConfig(config) {
				var ve ValidationError
				if errors.As(err, &ve) {
					fields = append(fields, ve.Field)
				}
			}
			if diff := cmp.Diff([]string{"demo.entries[0].value"}, fields); diff != "" {
				t.Errorf("invalid fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		err    error
	}{
		{"bad yaml", "hashtable: [", FormatYAML, ErrInvalidConfig},
		{"bad toml", "[hashtable", FormatTOML, ErrInvalidConfig},
		{"unknown format", "", Format("ini"), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.format)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("DSBOX_TEST_LEVEL", "debug")
	t.Setenv("DSBOX_TEST_EMPTY", "")

	tests := []struct {
		input    string
		expected string
	}{
		{"level: ${DSBOX_TEST_LEVEL}", "level: debug"},
		{"level: ${DSBOX_TEST_EMPTY:-warn}", "level: warn"},
		{"level: ${DSBOX_TEST_LEVEL:-warn}", "level: debug"},
		{"level: ${DSBOX_TEST_UNSET}", "level: "},
		{"no vars", "no vars"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := string(substituteEnvVars([]byte(tt.input)))
			if got != tt.expected {
				t.Errorf("substituteEnvVars(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "dsbox.yml")
		if err := os.WriteFile(path, []byte("hashtable:\n  buckets: 3\n"), 0644); err != nil {
			t.Fatal(err)
		}
		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if config.HashTable.Buckets != 3 {
			t.Errorf("expected 3 buckets, got %d", config.HashTable.Buckets)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "dsbox.json"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(DefaultConfig(), format)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}

			config, err := ParseConfig(data, format)
			if err != nil {
				t.Fatalf("ParseConfig failed: %v\n%s", err, data)
			}
			if diff := cmp.Diff(DefaultConfig().Demo.Words, config.Demo.Words); diff != "" {
				t.Errorf("words mismatch (-want +got):\n%s", diff)
			}
			if config.HashTable != DefaultConfig().HashTable {
				t.Errorf("hashtable mismatch: %+v", config.HashTable)
			}
		})
	}

	if _, err := Marshal(DefaultConfig(), Format("ini")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		fields []string
	}{
		{"valid", func(*Config) {}, nil},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, []string{"logging.level"}},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, []string{"logging.format"}},
		{"missing log dir", func(c *Config) { c.Logging.Output = "/nonexistent/dir/dsbox.log" }, []string{"logging.output"}},
		{"zero buckets", func(c *Config) { c.HashTable.Buckets = 0 }, []string{"hashtable.buckets"}},
		{"bad hasher", func(c *Config) { c.HashTable.Hasher = "md5" }, []string{"hashtable.hasher"}},
		{"no heap values", func(c *Config) { c.Demo.HeapValues = nil }, []string{"demo.heapValues"}},
		{"empty entry key", func(c *Config) { c.Demo.Entries[1].Key = "" }, []string{"demo.entries[1].key"}},
		{"missing entry value", func(c *Config) { c.Demo.Entries[0].Value = nil }, []string{"demo.entries[0].value"}},
		{"empty probe keys", func(c *Config) {
			c.Demo.LookupKeys = []string{""}
			c.Demo.DeleteKeys = []string{"city", ""}
		}, []string{"demo.lookupKeys[0]", "demo.deleteKeys[1]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			var fields []string
			for _, err := range ValidateConfig(config) {
				var ve ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if !strings.Contains(err.Error(), ve.Field) {
					t.Errorf("error %q does not name field %q", err, ve.Field)
				}
				fields = append(fields, ve.Field)
			}
			if diff := cmp.Diff(tt.fields, fields); diff != "" {
				t.Errorf("invalid fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

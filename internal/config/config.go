package config

// Config holds the complete dsbox configuration.
type Config struct {
	Logging   LogConfig       `yaml:"logging" toml:"logging"`
	HashTable HashTableConfig `yaml:"hashtable" toml:"hashtable"`
	Demo      DemoConfig      `yaml:"demo" toml:"demo"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	Output string `yaml:"output" toml:"output"`
}

// Hasher names accepted by HashTableConfig.Hasher.
const (
	HasherFNV    = "fnv"
	HasherSeeded = "seeded"
)

// HashTableConfig holds hash table construction settings.
type HashTableConfig struct {
	// Buckets is the fixed bucket count.
	Buckets int `yaml:"buckets" toml:"buckets"`
	// Hasher selects the key hash: "fnv" places keys the same way on every
	// run, "seeded" uses a per-table random seed.
	Hasher string `yaml:"hasher" toml:"hasher"`
}

// DemoConfig holds the data and probes for each demonstration step.
type DemoConfig struct {
	Words       []string      `yaml:"words" toml:"words"`
	SearchWords []string      `yaml:"searchWords" toml:"searchWords"`
	Prefixes    []string      `yaml:"prefixes" toml:"prefixes"`
	HeapValues  []int         `yaml:"heapValues" toml:"heapValues"`
	Entries     []EntryConfig `yaml:"entries" toml:"entries"`
	LookupKeys  []string      `yaml:"lookupKeys" toml:"lookupKeys"`
	DeleteKeys  []string      `yaml:"deleteKeys" toml:"deleteKeys"`
}

// EntryConfig is a single key/value pair inserted into the hash table.
// Value keeps whatever scalar type the decoder produced.
type EntryConfig struct {
	Key   string `yaml:"key" toml:"key"`
	Value any    `yaml:"value" toml:"value"`
}

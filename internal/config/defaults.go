package config

// DefaultConfig returns the configuration of the reference demonstration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		HashTable: HashTableConfig{
			Buckets: 10,
			Hasher:  HasherFNV,
		},
		Demo: DemoConfig{
			Words:       []string{"apple", "app", "banana"},
			SearchWords: []string{"apple", "appl"},
			Prefixes:    []string{"ban"},
			HeapValues:  []int{5, 3, 8, 1, 2},
			Entries: []EntryConfig{
				{Key: "name", Value: "Alice"},
				{Key: "age", Value: 25},
				{Key: "city", Value: "New York"},
			},
			LookupKeys: []string{"age"},
			DeleteKeys: []string{"city"},
		},
	}
}

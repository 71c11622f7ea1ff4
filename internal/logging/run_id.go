package logging

import "github.com/google/uuid"

// GenerateRunID returns a time-ordered ID for one demo run. IDs sort by
// creation time, so log lines from successive runs in one file group in
// order.
func GenerateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Package logging provides structured logging for dsbox.
//
// The Logger interface takes a message followed by alternating keys and
// values. Output goes through log/slog in either text or JSON form, with the
// time stored under "ts" and the level in lower case:
//
//	logger, closeLog := logging.New(logging.Config{Level: "debug", Format: "json"})
//	defer closeLog()
//	logger.Info("heap extract", "min", 1, "size", 4)
//
//	{"ts":"2026-10-18T10:30:00Z","level":"info","msg":"heap extract","min":1,"size":4}
//
// Loggers derived with WithFields or WithRunID carry their fields on every
// entry. NewNop discards everything and is meant for tests.
package logging

// Package logger provides structured logging functionality
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for application-wide logging
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New creates a new structured logger
func New(cfg Config) *Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithComponent returns a logger with a component attribute
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With("component", component),
	}
}

// WithVenue returns a logger with venue context attributes
func (l *Logger) WithVenue(venueID int64) *Logger {
	return &Logger{
		Logger: l.With("venue_id", venueID),
	}
}

// WithArtist returns a logger with artist context attributes
func (l *Logger) WithArtist(artistID int64) *Logger {
	return &Logger{
		Logger: l.With("artist_id", artistID),
	}
}

// WithShow returns a logger with the ids of a show and its owners
func (l *Logger) WithShow(showID, venueID, artistID int64) *Logger {
	return &Logger{
		Logger: l.With("show_id", showID, "venue_id", venueID, "artist_id", artistID),
	}
}

// Default returns a default logger for quick usage
func Default() *Logger {
	return New(Config{
		Level:  "info",
		Format: "text",
	})
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	return New(Config{Level: "error", Output: io.Discard})
}

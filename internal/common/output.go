package common

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contentforge/blockinfer/models"
)

// NewLogger builds the JSON logger every CLI action writes to stderr, so
// stdout stays reserved for the response envelope.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// WriteResponse renders the response envelope to w in the requested format.
// Supported formats are "json" (default) and "yaml".
func WriteResponse(w io.Writer, resp models.Response, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "", "json":
		data, err = json.MarshalIndent(resp, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(resp)
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

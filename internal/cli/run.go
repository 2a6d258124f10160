package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/avaquino/jpick"
)

// Run executes one projection pass: resolve the key spec, load the input,
// project every record, emit to the format's fixed-name output file. The
// pipeline is strictly sequential and fail-fast; the first failure aborts
// the run with an ExitError carrying the canonical diagnostic line.
//
// Logging goes to logW; the single success confirmation line goes to stdout.
func Run(cfg *Config, stdout, logW io.Writer) error {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	keys := jpick.ParseKeySpec(cfg.Keys)
	logger.Debug("key spec resolved", "keys", keys, "expected", cfg.KeyCount)
	if len(keys) != cfg.KeyCount {
		logger.Error("key count mismatch", "got", len(keys), "want", cfg.KeyCount)
		return &ExitError{Code: 1, Message: msgKeyCount}
	}

	registry, err := jpick.NewRegistry(jpick.Formats())
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	name := "json"
	if cfg.CSV {
		name = "csv"
	}
	format, err := registry.Lookup(name)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	records, err := jpick.Load(cfg.BaseDir, cfg.File)
	if err != nil {
		logger.Error("load failed", "error", err)
		return &ExitError{Code: 1, Message: msgFile}
	}
	logger.Debug("input loaded", "records", len(records))

	projected, err := jpick.Project(records, keys)
	if err != nil {
		logger.Error("projection failed", "error", err)
		if errors.Is(err, jpick.ErrMissingKey) {
			return &ExitError{Code: 1, Message: msgKey}
		}
		return &ExitError{Code: 1, Message: msgFile}
	}

	path := filepath.Join(cfg.OutDir, format.Filename)
	out, err := os.Create(path)
	if err != nil {
		logger.Error("output create failed", "path", path, "error", err)
		return writeExit(&jpick.WriteError{Format: format.Name, Err: err})
	}
	if err := format.Emit(out, keys, projected); err != nil {
		out.Close()
		logger.Error("emit failed", "path", path, "error", err)
		return writeExit(err)
	}
	if err := out.Close(); err != nil {
		logger.Error("output close failed", "path", path, "error", err)
		return writeExit(&jpick.WriteError{Format: format.Name, Err: err})
	}

	logger.Info("output written", "format", format.Name, "path", path, "records", len(projected))
	fmt.Fprintf(stdout, "%s output written to %s\n", strings.ToUpper(format.Name), format.Filename)
	return nil
}

// writeExit maps an output failure to the canonical write diagnostic,
// naming the format and the underlying cause.
func writeExit(err error) *ExitError {
	var we *jpick.WriteError
	if errors.As(err, &we) {
		return &ExitError{
			Code:    1,
			Message: fmt.Sprintf("Error writing %s file: %v", strings.ToUpper(we.Format), we.Err),
		}
	}
	return &ExitError{Code: 1, Message: err.Error()}
}

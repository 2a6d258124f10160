package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Canonical single-line diagnostics, kept word-for-word stable because
// callers and scripts match on them.
const (
	msgKeyCount = "Number of keys provided does not match the -n argument!"
	msgFile     = "JSON FILE NOT FOUND!"
	msgKey      = "Requested KEY(s) not present in input file!"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// Ambient settings (base dir, output dir, logging) default from the JPICK_*
// environment; flags override.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("jpick", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
jpick - Extract a subset of keys from a JSON list file and output as JSON or CSV.

Usage:
  jpick -f FILE -n COUNT -k KEY1,KEY2,... [-c] [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults, err := envConfig()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	fileFlag := flagSet.String("f", "", "Filename of the input JSON file, resolved relative to -dir.")
	numFlag := flagSet.Int("n", 0, "Expected number of keys in the -k list.")
	keysFlag := flagSet.String("k", "", "Comma-separated JSON keys to extract (e.g., key1,key2,...).")
	csvFlag := flagSet.Bool("c", false, "Output CSV instead of JSON.")
	dirFlag := flagSet.String("dir", defaults.BaseDir, "Base directory for input resolution. Defaults to the executable's directory.")
	outFlag := flagSet.String("out", defaults.OutDir, "Directory the output file is written to.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	seen := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	var missing []string
	for _, name := range []string{"f", "n", "k"} {
		if !seen[name] {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) > 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing required flags: " + strings.Join(missing, ", ")}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := &Config{
		File:      *fileFlag,
		KeyCount:  *numFlag,
		Keys:      *keysFlag,
		CSV:       *csvFlag,
		BaseDir:   *dirFlag,
		OutDir:    *outFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
	if err := cfg.resolveBaseDir(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

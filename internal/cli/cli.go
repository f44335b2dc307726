package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/cellgrid/internal/app"
	"github.com/vk/cellgrid/internal/watch"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cellgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cellgrid - Evaluate a sheet of integer cells and formulas.

Usage:
  cellgrid [options] [SHEET_PATH]

Arguments:
  SHEET_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	sheetFlag := flagSet.String("sheet", "", "Path to the sheet file or directory.")
	sFlag := flagSet.String("s", "", "Path to the sheet file or directory (shorthand).")
	cellsFlag := flagSet.String("cells", "", "Comma-separated cells to print, e.g. 'A1,B2'. Default is every declared cell.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and re-evaluate when the sheet files change.")
	debounceFlag := flagSet.Duration("debounce", watch.DefaultDebounce, "Quiet period before reacting to sheet file changes.")
	httpPortFlag := flagSet.Int("http-port", 0, "Port for the HTTP server (/health, /cells, /metrics). 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *sheetFlag != "" {
		path = *sheetFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Sheet path determined.", "path", path)

	if path == "" {
		slog.Debug("No sheet path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SheetPath: path,
		Cells:     splitCells(*cellsFlag),
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Watch:     *watchFlag,
		Debounce:  *debounceFlag,
		HTTPPort:  *httpPortFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitCells turns "A1, B2," into ["A1" "B2"].
func splitCells(raw string) []string {
	var cells []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			cells = append(cells, part)
		}
	}
	return cells
}

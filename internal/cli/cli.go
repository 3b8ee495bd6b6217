package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/typecodec/internal/app"
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
	flagSet := flag.NewFlagSet("typecodec", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
typecodec - compiles, names and exercises structural type descriptors.

Usage:
  typecodec [options] [DEFINITIONS_PATH]
  typecodec -descriptor DESCRIPTOR [-literal LITERAL]

Arguments:
  DEFINITIONS_PATH
    Path to a single .hcl or .json file, or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	defsFlag := flagSet.String("defs", "", "Path to the definitions file or directory.")
	dFlag := flagSet.String("d", "", "Path to the definitions file or directory (shorthand).")
	descriptorFlag := flagSet.String("descriptor", "", "A descriptor to name and exemplify, e.g. 't2is'.")
	actionFlag := flagSet.String("action", "", "Report only this action.")
	literalFlag := flagSet.String("literal", "", "A literal to parse against -descriptor, or against the input of -action.")
	resolverFlag := flagSet.String("resolver", "wdl", fmt.Sprintf("Resolver for wdl parameter types. Options: %s.", quoteAll(app.ResolverNames())))
	resolverURLFlag := flagSet.String("resolver-url", "", "URL of the remote resolver service.")
	resolverNamespaceFlag := flagSet.String("resolver-namespace", "/", "socket.io namespace of the remote resolver service.")
	resolverTimeoutFlag := flagSet.Duration("resolver-timeout", 10*time.Second, "Timeout for a single remote resolution.")
	insecureFlag := flagSet.Bool("resolver-insecure", false, "Skip TLS certificate verification for the remote resolver.")
	concurrencyFlag := flagSet.Int("concurrency", 1, "Number of wdl parameters resolved at once.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *defsFlag != "" {
		path = *defsFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Definitions path determined.", "path", path)

	if path == "" && *descriptorFlag == "" {
		slog.Debug("Nothing to do, printing usage and exiting.")
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
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *concurrencyFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid concurrency: must be at least 1"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DefinitionsPath:    path,
		Descriptor:         *descriptorFlag,
		Action:             *actionFlag,
		Literal:            *literalFlag,
		Resolver:           *resolverFlag,
		ResolverURL:        *resolverURLFlag,
		ResolverNamespace:  *resolverNamespaceFlag,
		ResolverTimeout:    *resolverTimeoutFlag,
		InsecureSkipVerify: *insecureFlag,
		Concurrency:        *concurrencyFlag,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

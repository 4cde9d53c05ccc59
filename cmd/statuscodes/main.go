// Command statuscodes prints the canonical tracing status codes, their descriptions, and
// the HTTP status conventionally used for each.
//
// Codes may be selected with --codes, or with the "codes" key of a configuration file
// named statuscodes.{json,yaml,...} found in /etc/statuscodes, $HOME/.statuscodes, or the
// current directory, or given explicitly with --file.  Codes are canonical names in any case
// ("not_found", "NotFound") or integers.  The "log" key configures diagnostic output, which
// goes to stderr as logfmt by default; "format: zap" selects zap's JSON encoding.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-kit/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/tracestatus/logging"
	"github.com/xmidt-org/tracestatus/tracing"
	"github.com/xmidt-org/tracestatus/tracing/tracinghttp"
	"github.com/xmidt-org/tracestatus/xviper"
)

const (
	applicationName = "statuscodes"

	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// Config is the unmarshaled configuration for this command
type Config struct {
	// Codes restricts output to these codes.  If empty, every canonical code is printed.
	Codes []tracing.StatusCode

	// HTTP adds a column with the HTTP status for each code
	HTTP bool

	// Brief omits descriptions
	Brief bool
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the fully-qualified configuration file")
	fs.StringP(xviper.DefaultNameFlag, "n", applicationName, "the configuration file name, without an extension")
	fs.StringSliceP("codes", "c", nil, "the codes to print, by name or number")
	fs.Bool("http", false, "include the HTTP status for each code")
	fs.Bool("brief", false, "omit descriptions")
	return fs
}

// newLogger builds the logger described by the "log" configuration key.  Unless a file
// is configured, output goes to stderr so that it never mixes with the code table.
func newLogger(v *viper.Viper, stderr io.Writer) (log.Logger, error) {
	o, err := logging.FromViper(logging.Sub(v))
	if err != nil {
		return nil, err
	}

	return logging.NewWriterLogger(o, log.NewSyncWriter(stderr)), nil
}

// unmarshalConfig decodes the command's configuration inside a span, which is logged
// with the logger carried by ctx.
func unmarshalConfig(ctx context.Context, v *viper.Viper) (Config, error) {
	var (
		spanner = tracing.NewSpanner(tracing.StatusFunc(tracinghttp.ErrorStatus))
		finish  = spanner.Start("unmarshal")
		config  Config
	)

	err := xviper.Unmarshal(v, []viper.DecoderConfigOption{xviper.DecodeHooks(tracing.StatusCodeHookFunc())}, &config)
	tracing.LogSpansContext(ctx, finish(err))
	return config, err
}

func run(arguments []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	if err := fs.Parse(arguments); err != nil {
		return exitUsage
	}

	v, err := xviper.New(
		xviper.StdOptions(applicationName, fs),
		xviper.BindConfigName(fs, xviper.DefaultNameFlag),
		xviper.BindConfigFile(fs, xviper.DefaultFileFlag),
		xviper.ReadInConfig(true),
	)

	if err != nil {
		fmt.Fprintf(stderr, "Unable to read configuration: %s\n", err)
		return exitFailure
	}

	logger, err := newLogger(v, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to create logger: %s\n", err)
		return exitFailure
	}

	config, err := unmarshalConfig(logging.WithLogger(context.Background(), logger), v)
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "invalid configuration", logging.ErrorKey(), err)
		return exitUsage
	}

	codes := config.Codes
	if len(codes) == 0 {
		codes = tracing.StatusCodes()
	}

	logging.Debug(logger).Log(logging.MessageKey(), "printing status codes", "count", len(codes))
	if err := printCodes(stdout, config, codes); err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to write output", logging.ErrorKey(), err)
		return exitFailure
	}

	return exitSuccess
}

func printCodes(w io.Writer, config Config, codes []tracing.StatusCode) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "CODE\tNAME")
	if config.HTTP {
		fmt.Fprint(tw, "\tHTTP")
	}

	if !config.Brief {
		fmt.Fprint(tw, "\tDESCRIPTION")
	}

	fmt.Fprintln(tw)
	for _, code := range codes {
		fmt.Fprintf(tw, "%d\t%s", code.Int(), code)
		if config.HTTP {
			fmt.Fprintf(tw, "\t%d", tracinghttp.ToHTTPStatus(code))
		}

		if !config.Brief {
			description, ok := code.Description()
			if !ok {
				description = "-"
			}

			fmt.Fprintf(tw, "\t%s", description)
		}

		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/jtime/foundation/core/config"
	jerror "github.com/msto63/jtime/foundation/core/error"
	"github.com/msto63/jtime/foundation/temporal"
	"github.com/msto63/jtime/internal/convert"
	"github.com/msto63/jtime/internal/report"
	"github.com/msto63/jtime/internal/tui"
	"github.com/msto63/jtime/pkg/core/logging"
)

// Configuration keys
const (
	keyOutputFormat  = "output.format"
	keyOutputUnit    = "output.unit"
	keyInputFrom     = "input.from"
	keyLogLevel      = "log.level"
	keyLogFormat     = "log.format"
	keyClockInterval = "clock.interval"
)

func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		keyOutputFormat:  "text",
		keyOutputUnit:    "s",
		keyInputFrom:     "moment",
		keyLogLevel:      "warn",
		keyLogFormat:     "text",
		keyClockInterval: "100ms",
	}
}

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	output  string
	unit    string
	verbose bool

	cfg     *config.Config
	logger  *logging.Logger
	format  report.Format
	service *convert.Service
}

// NewRootCommand builds the jtime command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "jtime",
		Short: "jtime - Julian time values",
		Long: `jtime converts and compares instants counted in seconds since
Julian day 0 (midnight starting 1 January 4713 BC, proleptic Julian).

Moments print as "<jsec>.<nsec>". Counts are reported in the selected unit
(ns, us, ms, s, min, h, d).

Representations for --from and --by:
  moment      210866803200.5
  unix        1700000000.25   (decimal seconds since 1970)
  unix-ms     1700000000250
  unix-ns     1700000000250000000
  julian-day  2460261.5       (astronomical Julian date)
  rfc3339     2023-11-14T22:13:20Z
  duration    90m             (after the Unix epoch)
  offset      90m             (a span, for add and sub)

Negative values look like flags; put them after "--":
  jtime convert --from unix -- -1.25
  jtime add -- 10.5 -2s`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discover jtime.toml/.yaml)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml")
	root.PersistentFlags().StringVarP(&a.unit, "unit", "u", "", "unit for counts: ns, us, ms, s, min, h, d")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	root.SetFlagErrorFunc(flagError)

	root.AddCommand(
		newNowCmd(a),
		newConvertCmd(a),
		newAddCmd(a),
		newSubCmd(a),
		newCompareCmd(a),
		newClockCmd(a),
		newVersionCmd(a),
	)

	return root
}

// Execute runs the jtime CLI with os.Args
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the jtime CLI with explicit arguments and writers
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		if a.logger != nil && a.verbose {
			a.logger.LogError(err)
		}
		printError(stderr, err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	base, err := logging.NewLogger(logging.LoggerConfig{
		Name:      "jtime",
		Level:     cfg.GetString(keyLogLevel),
		Format:    cfg.GetString(keyLogFormat),
		Verbose:   a.verbose,
		RequestID: uuid.NewString(),
		Output:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logger = logging.Wrap(base)
	a.logger.Debug("configuration loaded", "file", cfg.FilePath(), "command", cmd.Name())

	a.format, err = report.ParseFormat(a.setting(cmd, "output", a.output, keyOutputFormat))
	if err != nil {
		return err
	}

	unit, err := temporal.ParseUnit(a.setting(cmd, "unit", a.unit, keyOutputUnit))
	if err != nil {
		return err
	}

	a.service, err = convert.NewService(convert.Config{Unit: unit, Logger: a.logger})
	return err
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "JTIME",
			Defaults:  configDefaults(),
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.Defaults = configDefaults()
	return config.Discover(opts)
}

// setting returns the flag value when it was given, the configured value
// otherwise
func (a *app) setting(cmd *cobra.Command, flag, value, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return value
	}
	return a.cfg.GetString(key)
}

func (a *app) write(cmd *cobra.Command, r report.Report) error {
	return report.Write(cmd.OutOrStdout(), r, a.format)
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, tui.RenderError(err.Error()))
}

// negativeValue matches the flag error pflag reports for "-1.25" or "-2s"
var negativeValue = regexp.MustCompile(`unknown shorthand flag: '[0-9.]'`)

// flagError gives flag errors an input code and explains negative values
func flagError(cmd *cobra.Command, err error) error {
	msg := "invalid flags"
	if negativeValue.MatchString(err.Error()) {
		msg = "negative values must follow -- (jtime " + cmd.Name() + " [flags] -- <values>)"
	}
	return jerror.Wrap(err, msg).
		WithCode(jerror.CodeInvalidInput).
		WithOperation("cli." + cmd.Name())
}

// exactArgs is cobra.ExactArgs with an input error code
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return jerror.Newf("%s expects %d argument(s), got %d", cmd.Name(), n, len(args)).
				WithCode(jerror.CodeInvalidInput).
				WithOperation("cli." + cmd.Name())
		}
		return nil
	}
}

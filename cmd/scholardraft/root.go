package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/config"
	"github.com/alnah/go-scholardraft/internal/logger"
)

// envPrefix prefixes every environment override.
const envPrefix = "SCHOLARDRAFT"

// envBindings maps viper keys to environment variables.
var envBindings = map[string]string{
	"config":               envPrefix + "_CONFIG",
	"log.level":            envPrefix + "_LOG_LEVEL",
	"log.format":           envPrefix + "_LOG_FORMAT",
	"server.addr":          envPrefix + "_SERVER_ADDR",
	"output.dir":           envPrefix + "_OUTPUT_DIR",
	"output.format":        envPrefix + "_FORMAT",
	"document.studentName": envPrefix + "_STUDENT_NAME",
	"pdf.timeout":          envPrefix + "_TIMEOUT",
	"workers":              envPrefix + "_WORKERS",
}

// stringOverrides lists the config fields an environment variable or
// persistent flag may replace, in the order they are applied.
var stringOverrides = []struct {
	key   string
	field func(*config.Config) *string
}{
	{"log.level", func(c *config.Config) *string { return &c.Log.Level }},
	{"log.format", func(c *config.Config) *string { return &c.Log.Format }},
	{"server.addr", func(c *config.Config) *string { return &c.Server.Addr }},
	{"output.dir", func(c *config.Config) *string { return &c.Output.Dir }},
	{"output.format", func(c *config.Config) *string { return &c.Output.Format }},
	{"document.studentName", func(c *config.Config) *string { return &c.Document.StudentName }},
	{"pdf.timeout", func(c *config.Config) *string { return &c.PDF.Timeout }},
}

// app carries state shared by subcommands once the root pre-run resolved
// configuration.
type app struct {
	env    *Environment
	v      *viper.Viper
	flags  commonFlags
	cfg    *config.Config
	logger *slog.Logger
}

// run executes the CLI and returns the process exit code.
func run(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	root := newRootCmd(env)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if exitCodeFor(err) == ExitGeneral && isCobraUsageError(err) {
			err = fmt.Errorf("%w: %v", ErrUsage, err)
		}
		fmt.Fprintln(env.Stderr, errorMessage(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCobraUsageError reports errors cobra raises for bad arguments.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "required flag")
}

// newRootCmd builds the command tree bound to env.
func newRootCmd(env *Environment) *cobra.Command {
	a := &app{env: env, v: viper.New()}

	root := &cobra.Command{
		Use:   "scholardraft",
		Short: "Export generated research drafts to Word, HTML and PDF",
		Long: `scholardraft assembles generated research drafts (cover, abstract, five
chapters, references and appendices) into formatted documents.

Documents follow Indonesian academic conventions: Times New Roman 12pt,
double spacing, A4 with 3cm/4cm margins, numbered footnotes, and a
bibliography in APA, MLA, Chicago or Harvard style.

Settings come from a YAML config file, SCHOLARDRAFT_* environment
variables, and flags, in increasing order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
	}
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetIn(env.Stdin)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	a.flags.register(root.PersistentFlags())
	for _, key := range []string{"config", "log.level", "log.format"} {
		// Error ignored: the flag is registered just above.
		_ = a.v.BindPFlag(key, root.PersistentFlags().Lookup(flagForKey(key)))
	}
	for key, name := range envBindings {
		_ = a.v.BindEnv(key, name)
	}

	root.AddCommand(
		newExportCmd(a),
		newBibliographyCmd(a),
		newTOCCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return root
}

// flagForKey maps a viper key to its persistent flag name.
func flagForKey(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// preRun loads the config file, applies environment and flag overrides,
// validates the result, and installs the logger.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		a.cfg = config.DefaultConfig()
		a.logger = logger.New(a.env.Stderr, a.cfg.Log.Level, a.cfg.Log.Format)
		return nil
	}

	cfg := config.DefaultConfig()
	if name := a.v.GetString("config"); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	for _, o := range stringOverrides {
		if a.v.IsSet(o.key) {
			*o.field(cfg) = a.v.GetString(o.key)
		}
	}
	switch {
	case a.flags.verbose:
		cfg.Log.Level = "debug"
	case a.flags.quiet:
		cfg.Log.Level = "error"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.Init(a.env.Stderr, cfg.Log.Level, cfg.Log.Format)
	a.logger.Debug("configuration resolved",
		slog.String("config", a.v.GetString("config")),
		slog.String("style", cfg.Citation.Style),
		slog.String("format", cfg.Output.Format),
	)
	return nil
}

// workers returns the worker count from the flag, else the environment.
func (a *app) workers(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return a.v.GetInt("workers")
}

// exporterOptions builds the exporter options from the resolved config.
// A positive timeout overrides pdf.timeout.
func (a *app) exporterOptions(timeout time.Duration, workers int) ([]scholardraft.Option, error) {
	if timeout <= 0 {
		d, err := a.cfg.PDFTimeout()
		if err != nil {
			return nil, err
		}
		timeout = d
	}

	p := a.cfg.Pagination
	opts := []scholardraft.Option{
		scholardraft.WithTimeout(timeout),
		scholardraft.WithLogger(a.logger),
		scholardraft.WithWorkers(a.workers(workers)),
		scholardraft.WithPagination(p.WordsPerPage, 0, p.ReferencesPerPage),
		scholardraft.WithClock(a.env.Now),
	}
	if p.FrontMatterPages != nil {
		opts = append(opts, scholardraft.WithFrontMatterPages(*p.FrontMatterPages))
	}
	if a.cfg.Assets.BasePath != "" {
		opts = append(opts, scholardraft.WithAssetPath(a.cfg.Assets.BasePath))
	}
	return append(opts, a.env.ExporterOptions...), nil
}

// newExporter builds a single exporter for one-shot commands.
func (a *app) newExporter(timeout time.Duration, workers int) (*scholardraft.Exporter, error) {
	opts, err := a.exporterOptions(timeout, workers)
	if err != nil {
		return nil, err
	}
	return scholardraft.NewExporter(opts...)
}

// closeExporter releases e, logging failures.
func (a *app) closeExporter(e *scholardraft.Exporter) {
	if err := e.Close(); err != nil {
		a.logger.Warn("closing exporter", slog.Any("error", err))
	}
}

// errMissingInput reports a required input flag that was not given.
func errMissingInput(flag string) error {
	return fmt.Errorf("%w: --%s is required", ErrUsage, flag)
}

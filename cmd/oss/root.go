package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"oss/internal/config"
)

var log = commonlog.GetLogger("oss.cli")

type options struct {
	configPath string
	tokens     bool
	grammar    bool
	watch      bool
	quiet      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "oss [flags] <file.oss|dir>...",
		Short: "Check OSS rule files",
		Long: `Parse OSS rule files and print their syntax tree or the first
syntax error of each file. Directories are searched for files with one of the
configured extensions.

Examples:
  # Print the syntax tree of a file
  oss examples/user.oss

  # Check a directory without printing trees
  oss --quiet examples/

  # Check again whenever a file changes
  oss --watch examples/`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (default "+config.DefaultFile+" if present)")
	cmd.Flags().BoolVar(&opts.tokens, "tokens", false, "print the token stream instead of the AST")
	cmd.Flags().BoolVar(&opts.grammar, "grammar", false, "also check each file against the declarative grammar")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "check the files again whenever they change")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only report errors")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, opts options, paths []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	applyColor(cfg.Output.Color)

	c := &checker{opts: opts, cfg: cfg, out: cmd.OutOrStdout()}

	if !opts.watch {
		if !c.checkAll(paths) {
			return errCheckFailed
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.watch(ctx, paths)
}

var errCheckFailed = errors.New("one or more files failed to check")

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(config.DefaultFile)
}

func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

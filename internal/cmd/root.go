package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/zgrep/internal/config"
	"github.com/harrison/zgrep/internal/logger"
	"github.com/harrison/zgrep/internal/options"
	"github.com/harrison/zgrep/internal/scanner"
	"github.com/harrison/zgrep/internal/search"
	"github.com/harrison/zgrep/internal/walker"
	"github.com/spf13/cobra"
)

const usage = `Usage:

  zgrep [OPTIONS...] <pattern> <path>
  zgrep <pattern> [OPTIONS...] <path>
  zgrep <pattern> <path> [OPTIONS...]

  -r
	Search the files directly inside the given directory.
  -rf
	Search the given directory and all of its subdirectories.
  -n
	Prefix matches with their line number.
  -c
	Print the number of matching lines instead of the lines.
  --help
	Print usage information.
`

// NewRootCommand creates the zgrep command bound to cfg.
// A nil cfg uses config.DefaultConfig.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.WithDefaults()

	cmd := &cobra.Command{
		Use:   "zgrep [OPTIONS...] <pattern> <path>",
		Short: "Search files for lines containing a literal pattern",
		Long: `zgrep prints the lines of a file that contain a literal pattern.

With -r or -rf it searches every file of a directory and prefixes each
match with its file path. With -c it prints the number of matching lines.`,
		// Options are exact tokens (-rf is one option), parsed by options.Parse.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cfg, args)
		},
	}
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usage)
	})

	return cmd
}

// Execute runs zgrep with args, the process arguments without the program name.
// cobra reserves its shell-completion command names as a first argument, so
// those tokens bypass command lookup and are searched for like any pattern.
func Execute(cfg *config.Config, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		if cfg == nil {
			cfg = config.DefaultConfig()
		}
		return runSearch(cfg.WithDefaults(), args)
	}

	cmd := NewRootCommand(cfg)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

// runSearch parses args and runs the search. Only argument errors are
// returned; everything that goes wrong while searching is printed.
func runSearch(cfg *config.Config, args []string) error {
	opts, err := options.Parse(args)
	if errors.Is(err, options.ErrHelp) {
		fmt.Fprint(cfg.Stdout, usage)
		return nil
	}
	if err != nil {
		return err
	}

	console := logger.NewConsole(cfg.Stdout, cfg.Styler)
	controller := search.NewController(
		scanner.New(cfg.Fs),
		walker.New(cfg.Fs, console),
		console,
	)
	controller.Run(opts)
	return nil
}

// Package cli wires the gprompt command tree. The root command renders the
// prompt from the values collected by the shell integration; the
// subcommands print that integration, the effective configuration and the
// version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Gprompt/internal/config"
	"Gprompt/internal/logger"
	"Gprompt/internal/painter"
	"Gprompt/internal/prompt"
	"Gprompt/internal/render"
	"Gprompt/internal/shell"
)

// options holds the flag values of one command tree.
type options struct {
	configFile string
	debug      bool
	raw        bool
	shell      string
	args       prompt.Args
}

// Run executes the command line of the process and exits non-zero only
// when a subcommand fails.
func Run() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {

	opts := new(options)

	rootCmd := &cobra.Command{
		Use:   "gprompt",
		Short: "gprompt renders a git-aware shell prompt",
		Long: `gprompt prints a single-line PS1 built from the working directory,
git repository status, host and user, styled by the configured theme.

The git values are collected by the shell before each prompt; see
"gprompt init bash" or "gprompt init zsh" for the integration.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.configFile, "config", "", "Config file (default searched in ~/.config/gprompt)")
	persistent.BoolVar(&opts.debug, "debug", os.Getenv("GPROMPT_DEBUG") != "", "Log debug information to stderr")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.args.GitDir, "git", "", "Git directory (git rev-parse --git-dir)")
	flags.StringVar(&opts.args.Head, "head", "", "Content of the HEAD file")
	flags.StringVar(&opts.args.Hash, "hash", "", "Current commit (git rev-parse HEAD)")
	flags.StringVar(&opts.args.Status, "status", "", "Output of git status --porcelain -b")
	flags.BoolVar(&opts.args.BisectLog, "bisect-log", false, "A bisect is in progress")
	flags.StringVar(&opts.args.MergeHead, "merge-head", "", "Content of the MERGE_HEAD file")
	flags.StringVar(&opts.args.NameRev, "namerev", "", "Symbolic name of HEAD (git name-rev --name-only HEAD)")
	flags.StringVar(&opts.args.Host, "host", "", "Host name to show")
	flags.StringVar(&opts.args.User, "user", "", "User name to show")
	flags.BoolVar(&opts.raw, "raw", false, "Print without colours")
	flags.StringVar(&opts.shell, "shell", "", "Shell to wrap escapes for: bash, zsh or none (default auto-detect)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runRender writes the prompt to stdout. Failures past flag parsing are
// logged and degrade to a plainer prompt, so the shell always gets one.
func runRender(cmd *cobra.Command, opts *options) error {

	log := logger.New(opts.debug, cmd.ErrOrStderr())
	defer log.Sync()

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		log.Warn("using default config", "error", err)
	}

	if cmd.Flags().Changed("raw") {
		cfg.Style.Raw = opts.raw
	}
	if opts.shell != "" {
		cfg.Style.Shell = opts.shell
	}
	if cfg.Style.Shell == "" && !cfg.Style.Raw {
		cfg.Style.Shell = shell.Detect()
		log.Debug("detected shell", "shell", cfg.Style.Shell)
	}

	data := prompt.Assemble(currentEnv(), opts.args, cfg.Prompt)
	log.Debug("assembled prompt", "data", data)

	fmt.Fprint(cmd.OutOrStdout(), renderPrompt(log, cfg, data))

	return nil
}

func renderPrompt(log *logger.Logger, cfg config.Config, data prompt.Data) string {

	renderer, err := render.New(cfg.Prompt.Template, painter.NewPainter(cfg.Style))
	if err != nil {
		log.Error("cannot parse template", "error", err)
		return render.DefaultPrompt
	}

	ps1, err := renderer.Render(data)
	if err != nil {
		log.Error("cannot render prompt", "error", err)
	}

	return ps1
}

// currentEnv returns the logical working directory and the home directory.
func currentEnv() prompt.Env {

	env := prompt.Env{
		Cwd:  os.Getenv("PWD"),
		Home: os.Getenv("HOME"),
	}

	if env.Cwd == "" {
		env.Cwd, _ = os.Getwd()
	}

	if env.Home == "" {
		env.Home, _ = os.UserHomeDir()
	}

	return env
}

package cli

import (
	"fmt"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/config"
	"github.com/dmitrijs2005/empdir/internal/confirm"
	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands. Flags override the
// config file and the environment only when given explicitly.
type RootOptions struct {
	ConfigPath string
	EnvFile    string
	DBPath     string
	Language   string
	PerPage    int
	LogLevel   string
	LogFormat  string
	NoSeed     bool
	Sealed     bool

	cfg *config.Config
}

// NewRootCommand creates the empdir command tree. Without a subcommand it
// starts the interactive shell.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "empdir",
		Short:         "Employee directory",
		Long:          "Manage a local employee directory: browse, search, add, edit, delete and export records.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Run(cmd.Context())
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON config file")
	f.StringVar(&opts.EnvFile, "env-file", ".env", "path to a dotenv file")
	f.StringVar(&opts.DBPath, "db", "", "SQLite database path")
	f.StringVar(&opts.Language, "lang", "", "UI language (en|tr)")
	f.IntVar(&opts.PerPage, "per-page", 0, "items per page")
	f.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	f.StringVar(&opts.LogFormat, "log-format", "", "log format (text|json)")
	f.BoolVar(&opts.NoSeed, "no-seed", false, "do not add demo employees to an empty directory")
	f.BoolVar(&opts.Sealed, "sealed", false, "encrypt stored data, asking for a passphrase")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func (o *RootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath, o.EnvFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = o.DBPath
	}
	if flags.Changed("lang") {
		cfg.Language = o.Language
	}
	if flags.Changed("per-page") {
		cfg.PerPage = o.PerPage
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.LogFormat
	}
	if o.NoSeed {
		cfg.Seed = false
	}

	if o.Sealed && cfg.Passphrase == "" {
		pw, err := GetPassword(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cfg.Passphrase = string(pw)
		common.WipeByteArray(pw)
		if cfg.Passphrase == "" {
			return fmt.Errorf("empty passphrase: %w", common.ErrorInvalidInput)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// openApp builds an App on the command's streams. A nil gate prompts.
func (o *RootOptions) openApp(cmd *cobra.Command, gate confirm.Gate) (*App, error) {
	logger := logging.New(cmd.ErrOrStderr(), o.cfg.LogLevel, o.cfg.LogFormat)
	return NewApp(cmd.Context(), o.cfg, AppOptions{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: logger,
		Gate:   gate,
	})
}

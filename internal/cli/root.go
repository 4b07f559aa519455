package cli

import (
	"github.com/spf13/cobra"

	"circlecalc/internal/config"
	"circlecalc/internal/i18n"
	"circlecalc/internal/logging"
)

// Frontend starts an interactive calculator with the resolved settings.
type Frontend func(cfg config.Config) error

// NewRootCommand builds the command tree. Running without a subcommand starts
// gui; the tui subcommand starts tui.
func NewRootCommand(gui, tui Frontend) *cobra.Command {
	var (
		cfgFile string
		cfg     config.Config
	)

	i18n.Init("en")

	cmd := &cobra.Command{
		Use:           "circlecalc",
		Short:         i18n.T("cli.short"),
		Long:          i18n.T("cli.long"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cmd, cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			logging.Configure(cmd.ErrOrStderr(), cfg.Verbose)
			i18n.Init(cfg.Locale)
			logging.Debugf("config: locale=%s tape=%q", cfg.Locale, cfg.Tape)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui(cfg)
		},
	}

	defaults := config.Defaults()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: calculator.yaml in the user config dir or ./)")
	cmd.PersistentFlags().String("locale", defaults["locale"].(string), `display locale ("en", "de", ...)`)
	cmd.PersistentFlags().String("tape", "", "append every evaluation to this CSV file")
	cmd.PersistentFlags().Bool("daily", false, "add the current date to the tape file name")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	current := func() config.Config { return cfg }
	cmd.AddCommand(
		newEvalCommand(current),
		newPressCommand(current),
		&cobra.Command{
			Use:   "tui",
			Short: i18n.T("cli.tui_short"),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return tui(cfg)
			},
		},
	)

	return cmd
}

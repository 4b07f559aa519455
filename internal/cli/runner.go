package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"circlecalc/internal/calc"
	"circlecalc/internal/config"
	"circlecalc/internal/export"
	"circlecalc/internal/expr"
	"circlecalc/internal/format"
	"circlecalc/internal/i18n"
	"circlecalc/internal/logging"
)

// NewCalculator builds a calculator for cfg, wiring the CSV tape when one is
// configured.
func NewCalculator(cfg config.Config) *calc.Calculator {
	c := calc.New(expr.Evaluator{}, format.NewFormatter(i18n.Tag(cfg.Locale)))
	if cfg.Tape != "" {
		c.OnEntry = export.CSVRecorder(TapePath(cfg, time.Now()))
	}
	return c
}

// TapePath returns the tape file for cfg. With Daily set the date is added
// before the extension, e.g. tape_13.02.2026.csv.
func TapePath(cfg config.Config, now time.Time) string {
	if !cfg.Daily || cfg.Tape == "" {
		return cfg.Tape
	}
	ext := filepath.Ext(cfg.Tape)
	return export.BuildPath(strings.TrimSuffix(cfg.Tape, ext), ext, now)
}

// Evaluate computes a typed expression and formats it with the calculator's
// result policy. Any multiplication spelling is accepted and grouping
// separators of the locale are ignored.
func Evaluate(f *format.Formatter, expression string) (string, error) {
	src := f.StripSeparators(strings.TrimSpace(expression))
	src = strings.NewReplacer("x", "*", "X", "*", "×", "*").Replace(src)
	v, err := expr.Evaluate(src)
	if err != nil {
		return "", fmt.Errorf("evaluate %q: %w", expression, err)
	}
	return format.Result(v), nil
}

// Replay presses keys in order and returns the final screen. With verbose
// set, every intermediate screen is logged.
func Replay(c *calc.Calculator, keys []string, verbose bool) calc.Screen {
	scr := c.Screen()
	for _, k := range keys {
		scr = c.Press(k)
		if verbose {
			logging.Infof("%-4s -> %s", k, scr.Display)
		}
	}
	return scr
}

// PrintScreen writes a screen in a human-readable block.
func PrintScreen(w io.Writer, scr calc.Screen) {
	if scr.History != "" {
		fmt.Fprintf(w, "%-9s %s\n", i18n.T("cli.history")+":", scr.History)
	}
	fmt.Fprintf(w, "%-9s %s\n", i18n.T("cli.display")+":", scr.Display)
}

// splitKeys accepts keys as separate arguments or whitespace separated in
// one argument.
func splitKeys(args []string) []string {
	var keys []string
	for _, a := range args {
		keys = append(keys, strings.Fields(a)...)
	}
	return keys
}

func newEvalCommand(cfg func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "eval <expression>",
		Short:   i18n.T("cli.eval_short"),
		Example: "  circlecalc eval '2x3+4'\n  circlecalc eval '(1+2)*3' --locale de",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := format.NewFormatter(i18n.Tag(cfg().Locale))
			out, err := Evaluate(f, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.Render(out))
			return nil
		},
	}
}

func newPressCommand(cfg func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "press <key>...",
		Short:   i18n.T("cli.press_short"),
		Example: "  circlecalc press 1 2 3 4 + 5 =\n  circlecalc press '9 x 9 = +/-'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			scr := Replay(NewCalculator(c), splitKeys(args), c.Verbose)
			PrintScreen(cmd.OutOrStdout(), scr)
			return nil
		},
	}
}

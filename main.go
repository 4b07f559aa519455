package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"circlecalc/internal/cli"
	"circlecalc/internal/config"
	"circlecalc/ui"
	"circlecalc/ui/tui"
)

func main() {
	root := cli.NewRootCommand(runGUI, runTUI)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI(cfg config.Config) error {
	a := app.NewWithID("com.circlecalc.gui")
	win := ui.BuildMainWindow(a, cli.NewCalculator(cfg))
	win.ShowAndRun()
	return nil
}

func runTUI(cfg config.Config) error {
	return tui.Run(cli.NewCalculator(cfg))
}

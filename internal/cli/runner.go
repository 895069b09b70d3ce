package cli

import (
	"fmt"

	"github.com/nkaratas/taskpad/internal/config"
	"github.com/nkaratas/taskpad/internal/logging"
	"github.com/nkaratas/taskpad/internal/store/memstore"
	"github.com/nkaratas/taskpad/internal/tui"
	"github.com/nkaratas/taskpad/internal/ui"
)

const version = "0.2.0"

// Options carry the root flags into the runner.
type Options struct {
	Theme   string // overrides config + env when non-empty
	Debug   string // debug log file path
	Version bool
}

// Run dispatches and returns an exit code (0 ok, 1 error, 2 usage).
// Non-flag args seed the in-memory store as task titles; nothing ever
// outlives the session.
func Run(args []string, opt Options) int {
	if opt.Version {
		fmt.Println("taskpad " + version)
		return 0
	}
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			PrintHelp()
			return 0
		case "version":
			fmt.Println("taskpad " + version)
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not keep the app from starting.
		ui.Fail("config: " + err.Error())
	}
	theme := cfg.Theme
	if opt.Theme != "" {
		theme = opt.Theme
	}
	ui.Set(theme)

	logger := logging.Discard()
	logPath := cfg.LogFile
	if opt.Debug != "" {
		logPath = opt.Debug
	}
	if logPath != "" {
		l, closer, err := logging.Open(logPath)
		if err != nil {
			ui.Fail("debug log: " + err.Error())
			return 1
		}
		defer closer.Close()
		logger = l
	}

	st := memstore.New()
	for _, title := range args {
		if _, ok := st.Add(title); ok {
			logger.Debug("seeded", "title", title)
		}
	}

	finalTheme, err := tui.Run(st, logger)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}

	// Tasks are gone; the theme preference survives.
	if finalTheme != cfg.Theme {
		cfg.Theme = finalTheme
		if err := cfg.Save(); err != nil {
			ui.Fail("save config: " + err.Error())
		}
	}
	return 0
}

func PrintHelp() {
	fmt.Printf(`taskpad - an in-memory todo list for your terminal

Usage:
  taskpad [flags] [seed titles...]

Tasks live only for the session; quitting discards them.

Flags:
  --theme <dark|light>   Select the color theme (also: TASKPAD_THEME)
  --debug <file>         Append a debug log to <file>
  --version              Print the version

Keys:
  a        add a task            space    toggle done
  e        edit (tab cycles fields, enter/ctrl+s saves, esc cancels)
  d        delete                t        toggle dark/light theme
  /        filter                q        quit

Examples:
  taskpad "Buy milk" "Walk dog"
  taskpad --theme light
`)
}

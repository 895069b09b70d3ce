package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/nkaratas/taskpad/internal/cli"
)

func main() {
	// Root flags (everything else is interactive)
	theme := pflag.String("theme", "", "color theme: dark or light")
	debug := pflag.String("debug", "", "append a debug log to this file")
	version := pflag.BoolP("version", "v", false, "print version and exit")
	pflag.Parse()

	os.Exit(cli.Run(pflag.Args(), cli.Options{
		Theme:   *theme,
		Debug:   *debug,
		Version: *version,
	}))
}

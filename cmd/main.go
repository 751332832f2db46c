// FILE: lixenwraith/settings/cmd/main.go
// settings-dump prints the settings an application would resolve from its
// manifest, config files, environment and command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/settings"
)

var version = "dev"

const usage = `
  Usage: settings-dump [OPTIONS] [-- APP ARGS]

  Prints the settings resolved for an application.

  Options:
    -n, --name STRING     Application name, default settings-dump
    -f, --format STRING   Output format: toml, json or yaml
    -o, --output STRING   Write to a file instead of stdout
    -v, --verbose         Log each loaded source to stderr
        --debug           Print the debug dump instead
    -h, --help            Show this help
        --version         Show version
`

func main() {
	self, err := settings.NewBuilder().
		WithName("settings-dump").
		WithVersion(version).
		WithParam("format", settings.Param{Default: settings.FormatTOML}).
		WithHelp(usage, settings.DefaultHelpOptions()).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "settings-dump:", err)
		os.Exit(1)
	}

	name, _ := self.String("name")
	format, _ := self.String("format")
	output, _ := self.String("output")
	verbose, _ := self.Bool("verbose")
	debug, _ := self.Bool("debug")

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	target := self
	if name != "" && name != self.Name() {
		target = settings.NewWithOptions(nil, settings.Options{
			Name:       name,
			InferTypes: true,
			Args:       []string{},
			Logger:     logger,
		})
		if err := target.LoadDefaults(""); err != nil {
			logger.Error("failed to resolve settings", "name", name, "error", err)
			os.Exit(1)
		}
	}

	if debug {
		fmt.Print(target.Debug())
		return
	}

	if output != "" {
		if err := target.Save(output); err != nil {
			logger.Error("failed to save settings", "path", output, "error", err)
			os.Exit(1)
		}
		logger.Info("settings saved", "path", output)
		return
	}

	data, err := target.Marshal(format)
	if err != nil {
		logger.Error("failed to encode settings", "format", format, "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

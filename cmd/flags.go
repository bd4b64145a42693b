package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tabsresp/internal/config"
	"tabsresp/internal/dom"
	"tabsresp/pkg/logging"
)

// widgetFlags are the options shared by run and render. A flag only
// overrides the configuration files when it is given explicitly.
type widgetFlags struct {
	configPath      string
	mode            string
	breakpoint      int
	multiselectable bool
	firstOpen       bool
	debug           bool
}

func (f *widgetFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "Configuration file layered over the user and project files")
	fs.StringVar(&f.mode, "mode", "", `Initial mode, "tabs" or "accordion"`)
	fs.IntVar(&f.breakpoint, "breakpoint", 0, "Responsive breakpoint in pixels, 0 disables switching")
	fs.BoolVar(&f.multiselectable, "multiselectable", true, "Allow several accordion panels to be open")
	fs.BoolVar(&f.firstOpen, "first-open", true, "Open the first accordion panel on init")
	fs.BoolVar(&f.debug, "debug", false, "Log at debug level")
}

// loadConfig merges the configuration files and applies explicit flags.
func (f *widgetFlags) loadConfig(cmd *cobra.Command) (config.TabsrespConfig, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return config.TabsrespConfig{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("mode") {
		cfg.Widget.Mode = f.mode
	}
	if fs.Changed("breakpoint") {
		bp := f.breakpoint
		cfg.Widget.ResponsiveBreakpoint = &bp
	}
	if fs.Changed("multiselectable") {
		multi := f.multiselectable
		cfg.Widget.Multiselectable = &multi
	}
	if fs.Changed("first-open") {
		open := f.firstOpen
		cfg.Widget.FirstPanelsOpenByDefault = &open
	}
	if f.debug {
		cfg.GlobalSettings.LogLevel = logging.LevelDebug.String()
	}

	if err := config.Validate(cfg); err != nil {
		return config.TabsrespConfig{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func logLevel(cfg config.TabsrespConfig) logging.LogLevel {
	level, _ := logging.ParseLevel(cfg.GlobalSettings.LogLevel)
	return level
}

// readDocument parses the HTML file at path, or stdin for "-".
func readDocument(cmd *cobra.Command, path string) (*dom.Document, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

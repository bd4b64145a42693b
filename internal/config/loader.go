package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tabsresp/internal/dom"
	"tabsresp/internal/tabsresp"
	"tabsresp/pkg/logging"
)

const subsystem = "Config"

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/tabsresp"
	projectConfigDir = ".tabsresp"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, project and,
// when explicitPath is not empty, an explicitly named file on top.
func LoadConfig(explicitPath string) (TabsrespConfig, error) {
	config := GetDefaultConfig()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			// Optional layers; an unknown home or working directory is not fatal.
			logging.Warn(subsystem, "could not determine %s config path: %v", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return TabsrespConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		logging.Debug(subsystem, "loaded %s config from %s", layer.name, path)
		config = mergeConfigs(config, overlay)
	}

	if explicitPath != "" {
		overlay, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return TabsrespConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, overlay)
	}

	if err := Validate(config); err != nil {
		return TabsrespConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a TabsrespConfig from a YAML file.
func loadConfigFromFile(filePath string) (TabsrespConfig, error) {
	var config TabsrespConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TabsrespConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return TabsrespConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Set fields of the
// overlay win.
func mergeConfigs(base, overlay TabsrespConfig) TabsrespConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.GlobalSettings.AltScreen != nil {
		merged.GlobalSettings.AltScreen = overlay.GlobalSettings.AltScreen
	}
	if overlay.GlobalSettings.Theme != "" {
		merged.GlobalSettings.Theme = overlay.GlobalSettings.Theme
	}
	if overlay.GlobalSettings.CellWidth != 0 {
		merged.GlobalSettings.CellWidth = overlay.GlobalSettings.CellWidth
	}

	mw, ow := &merged.Widget, overlay.Widget
	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	str(&mw.Selector, ow.Selector)
	str(&mw.ReadyClass, ow.ReadyClass)
	str(&mw.HeaderSelector, ow.HeaderSelector)
	str(&mw.HeaderIDPrefix, ow.HeaderIDPrefix)
	str(&mw.PanelSelector, ow.PanelSelector)
	str(&mw.PanelIDPrefix, ow.PanelIDPrefix)
	str(&mw.TablistSelector, ow.TablistSelector)
	str(&mw.Mode, ow.Mode)
	if ow.FirstPanelsOpenByDefault != nil {
		mw.FirstPanelsOpenByDefault = ow.FirstPanelsOpenByDefault
	}
	if ow.Multiselectable != nil {
		mw.Multiselectable = ow.Multiselectable
	}
	if ow.ResponsiveBreakpoint != nil {
		mw.ResponsiveBreakpoint = ow.ResponsiveBreakpoint
	}

	return merged
}

// Validate checks values a YAML file can get wrong: the mode name, the
// breakpoint sign, the log level and the selector syntax.
func Validate(c TabsrespConfig) error {
	var errs []error

	if c.Widget.Mode != "" && !tabsresp.Mode(c.Widget.Mode).Valid() {
		errs = append(errs, fmt.Errorf("widget.mode must be %q or %q, got %q", tabsresp.ModeTabs, tabsresp.ModeAccordion, c.Widget.Mode))
	}
	if bp := c.Widget.ResponsiveBreakpoint; bp != nil && *bp < 0 {
		errs = append(errs, fmt.Errorf("widget.responsiveBreakpoint must not be negative, got %d", *bp))
	}
	switch c.GlobalSettings.Theme {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		errs = append(errs, fmt.Errorf("globalSettings.theme must be %q, %q or %q, got %q", ThemeAuto, ThemeDark, ThemeLight, c.GlobalSettings.Theme))
	}
	if c.GlobalSettings.CellWidth < 0 {
		errs = append(errs, fmt.Errorf("globalSettings.cellWidth must not be negative, got %d", c.GlobalSettings.CellWidth))
	}
	if _, ok := logging.ParseLevel(c.GlobalSettings.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("globalSettings.logLevel %q is not a log level", c.GlobalSettings.LogLevel))
	}
	for _, f := range []struct{ name, sel string }{
		{"selector", c.Widget.Selector},
		{"headerSelector", c.Widget.HeaderSelector},
		{"panelSelector", c.Widget.PanelSelector},
		{"tablistSelector", c.Widget.TablistSelector},
	} {
		if f.sel == "" {
			continue
		}
		if err := dom.ValidSelector(f.sel); err != nil {
			errs = append(errs, fmt.Errorf("widget.%s: %w", f.name, err))
		}
	}

	return errors.Join(errs...)
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

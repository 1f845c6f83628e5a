// Package config loads command line settings from defaults, an optional
// config file, FILEINPUT_* environment variables and flags, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agiangrant/fileinput"
)

// EnvPrefix prefixes every environment variable the tools read.
const EnvPrefix = "FILEINPUT"

// Config holds the resolved settings.
type Config struct {
	Preset            string   `mapstructure:"preset"`
	Locale            string   `mapstructure:"locale"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	ShowClearButton   bool     `mapstructure:"show_clear_button"`
	Verbose           bool     `mapstructure:"verbose"`
	Debug             bool     `mapstructure:"debug"`

	// Whether a config file, the environment or a flag set the value.
	// Flag defaults do not count, so an unset value leaves the preset alone.
	allowedSet   bool
	showClearSet bool

	configFile string
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"preset":     "preset",
	"locale":     "locale",
	"allow":      "allowed_extensions",
	"show-clear": "show_clear_button",
	"verbose":    "verbose",
	"debug":      "debug",
}

// RegisterFlags adds the shared flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (.toml or .yaml)")
	fs.String("preset", "", "widget preset file (.toml or .yaml)")
	fs.String("locale", fileinput.DefaultLocaleTag, "locale for button and placeholder text")
	fs.StringSlice("allow", nil, "allowed file extensions, comma separated")
	fs.Bool("show-clear", true, "show the clear button when a file is selected")
	fs.BoolP("verbose", "v", false, "log informational messages")
	fs.Bool("debug", false, "log debug messages")
}

// Load resolves settings for a parsed fs. A config file named by --config
// must exist; otherwise fileinput.{toml,yaml} is looked up in the working
// directory and $HOME/.config/fileinput and skipped when absent.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("locale", fileinput.DefaultLocaleTag)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	explicit := false
	if f := fs.Lookup("config"); f != nil && f.Changed {
		v.SetConfigFile(f.Value.String())
		explicit = true
	} else {
		v.SetConfigName("fileinput")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fileinput")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.allowedSet = v.IsSet("allowed_extensions")
	cfg.showClearSet = v.IsSet("show_clear_button")
	cfg.configFile = v.ConfigFileUsed()
	if cfg.allowedSet {
		cfg.AllowedExtensions = cleanExtensions(cfg.AllowedExtensions)
	} else {
		cfg.AllowedExtensions = nil
	}
	return cfg, nil
}

// ConfigFile returns the config file that was read, or "".
func (c *Config) ConfigFile() string { return c.configFile }

// Overrides returns the widget overrides: the preset file first, then any
// allowed extensions and clear button setting from the other layers.
func (c *Config) Overrides() (fileinput.Overrides, error) {
	var ov fileinput.Overrides
	if c.Preset != "" {
		p, err := fileinput.LoadOverrides(c.Preset)
		if err != nil {
			return fileinput.Overrides{}, fmt.Errorf("load preset: %w", err)
		}
		ov = p
	}
	var top fileinput.Overrides
	if c.allowedSet {
		top = top.WithAllowedExtensions(c.AllowedExtensions...)
	}
	if c.showClearSet {
		top = top.WithShowClearButton(c.ShowClearButton)
	}
	return ov.Layer(top), nil
}

// LocaleText returns the locale for the configured tag, or English.
func (c *Config) LocaleText() fileinput.Locale {
	return fileinput.LocaleFor(c.Locale)
}

// cleanExtensions trims whitespace and leading dots.
func cleanExtensions(exts []string) []string {
	if exts == nil {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

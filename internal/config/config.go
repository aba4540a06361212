package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/beanview/internal/dataset"
	"github.com/KaramelBytes/beanview/internal/views"
)

// Global configuration structure.
type Global struct {
	// Data source
	DataPath   string `mapstructure:"data_path" yaml:"data_path"`
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	SheetName  string `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex int    `mapstructure:"sheet_index" yaml:"sheet_index"`

	// HTTP shell
	ListenAddr         string `mapstructure:"listen_addr" yaml:"listen_addr"`
	ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec"`

	// View defaults
	ScoreBinWidth    int    `mapstructure:"score_bin_width" yaml:"score_bin_width"`
	DefaultCategory1 string `mapstructure:"default_category_1" yaml:"default_category_1"`
	DefaultCategory2 string `mapstructure:"default_category_2" yaml:"default_category_2"`
	DefaultCountry1  string `mapstructure:"default_country_1" yaml:"default_country_1"`
	DefaultCountry2  string `mapstructure:"default_country_2" yaml:"default_country_2"`
	DefaultNormalize bool   `mapstructure:"default_normalize" yaml:"default_normalize"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Keys lists every settable key in display order.
var Keys = []string{
	"data_path", "delimiter", "sheet_name", "sheet_index",
	"listen_addr", "shutdown_timeout_sec",
	"score_bin_width",
	"default_category_1", "default_category_2",
	"default_country_1", "default_country_2", "default_normalize",
	"log_level", "log_format",
}

// Dir returns ~/.beanview.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".beanview"), nil
}

func setDefaults(v *viper.Viper) {
	prefs := views.DefaultPreferences()
	v.SetDefault("data_path", "")
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet_name", "")
	v.SetDefault("sheet_index", 1)
	v.SetDefault("listen_addr", ":8501")
	v.SetDefault("shutdown_timeout_sec", 10)
	v.SetDefault("score_bin_width", 1)
	v.SetDefault("default_category_1", prefs.Category1)
	v.SetDefault("default_category_2", prefs.Category2)
	v.SetDefault("default_country_1", prefs.Country1)
	v.SetDefault("default_country_2", prefs.Country2)
	v.SetDefault("default_normalize", prefs.Normalize)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// Default returns the configuration with only defaults applied.
func Default() *Global {
	v := viper.New()
	setDefaults(v)
	var c Global
	_ = v.Unmarshal(&c)
	return &c
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.beanview/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("BEANVIEW")
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges and enumerations.
func (c *Global) Validate() error {
	if _, err := dataset.ParseDelimiter(c.Delimiter); err != nil {
		return fmt.Errorf("invalid delimiter: %w", err)
	}
	if c.SheetIndex < 1 {
		return fmt.Errorf("invalid sheet_index: %d (sheets are numbered from 1)", c.SheetIndex)
	}
	if c.ShutdownTimeoutSec < 0 {
		return fmt.Errorf("invalid shutdown_timeout_sec: %d", c.ShutdownTimeoutSec)
	}
	if c.ScoreBinWidth < 1 || c.ScoreBinWidth > 100 {
		return fmt.Errorf("invalid score_bin_width: %d (use 1-100)", c.ScoreBinWidth)
	}
	for _, name := range []string{c.DefaultCategory1, c.DefaultCategory2} {
		if _, ok := dataset.ParseCategory(name); !ok {
			return &views.CategoryError{Name: name}
		}
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (use console or json)", c.LogFormat)
	}
	return nil
}

// Set assigns a single key from its string form and validates the result.
func (c *Global) Set(key, val string) error {
	next := *c
	switch key {
	case "data_path":
		next.DataPath = val
	case "delimiter":
		next.Delimiter = val
	case "sheet_name":
		next.SheetName = val
	case "sheet_index":
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid int for sheet_index: %v", val)
		}
		next.SheetIndex = i
	case "listen_addr":
		next.ListenAddr = val
	case "shutdown_timeout_sec":
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid int for shutdown_timeout_sec: %v", val)
		}
		next.ShutdownTimeoutSec = i
	case "score_bin_width":
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid int for score_bin_width: %v", val)
		}
		next.ScoreBinWidth = i
	case "default_category_1":
		next.DefaultCategory1 = strings.ToLower(val)
	case "default_category_2":
		next.DefaultCategory2 = strings.ToLower(val)
	case "default_country_1":
		next.DefaultCountry1 = val
	case "default_country_2":
		next.DefaultCountry2 = val
	case "default_normalize":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for default_normalize: %v", val)
		}
		next.DefaultNormalize = b
	case "log_level":
		next.LogLevel = strings.ToLower(val)
	case "log_format":
		next.LogFormat = strings.ToLower(val)
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Preferences returns the view defaults carried by the configuration.
func (c *Global) Preferences() views.Preferences {
	return views.Preferences{
		Category1: c.DefaultCategory1,
		Category2: c.DefaultCategory2,
		Country1:  c.DefaultCountry1,
		Country2:  c.DefaultCountry2,
		Normalize: c.DefaultNormalize,
	}
}

// LoadOptions returns the loader options for the configured source.
func (c *Global) LoadOptions() (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	d, err := dataset.ParseDelimiter(c.Delimiter)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = d
	opt.SheetName = c.SheetName
	if c.SheetIndex > 0 {
		opt.SheetIndex = c.SheetIndex
	}
	return opt, nil
}

// ViewOptions returns the rendering options derived from the configuration.
func (c *Global) ViewOptions() views.Options {
	return views.Options{ScoreBinWidth: float64(c.ScoreBinWidth)}
}

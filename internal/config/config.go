package config

import (
	"io"
	"os"
	"strings"

	"codeberg.org/mparkin/smcflux/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "warn"

	defaultDBPath     = "/var/lib/smcflux/readings.db"
	defaultConfigPath = "/etc"
	configName        = "smcflux"
	configType        = "toml"
)

// Config holds the run configuration: which sensor groups to emit, the
// hostname tag, and the ambient settings (logging, readings archive).
type Config struct {
	CPU        bool   `mapstructure:"cpu"`
	GPU        bool   `mapstructure:"gpu"`
	WiFi       bool   `mapstructure:"wifi"`
	SSD        bool   `mapstructure:"ssd"`
	Fans       bool   `mapstructure:"fans"`
	All        bool   `mapstructure:"all"`
	Everything bool   `mapstructure:"everything"`
	Hostname   bool   `mapstructure:"hostname"`
	LogLevel   string `mapstructure:"log_level"`
	Metrics    bool   `mapstructure:"metrics"`
	Database   string `mapstructure:"database"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("smcflux", pflag.ContinueOnError)
	fs.BoolP("cpu", "c", false, "emit CPU temperature")
	fs.BoolP("gpu", "g", false, "emit GPU temperature")
	fs.BoolP("wifi", "w", false, "emit WiFi temperature")
	fs.BoolP("ssd", "s", false, "emit SSD temperature")
	fs.BoolP("fans", "f", false, "emit fan speeds")
	fs.BoolP("all", "a", false, "CPU, GPU and fans - same as -cgf")
	fs.BoolP("everything", "A", false, "all temperature and fan metrics")
	fs.BoolP("hostname", "n", false, "tag lines with hostname")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Bool("metrics", false, "archive readings to a SQLite database")
	fs.String("database", "", "readings database path")
	fs.String("config", "", "config file path")

	return fs
}

// Usage returns the flag help text.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: smcflux [flags]\n")
	b.WriteString(newFlagSet().FlagUsages())

	return b.String()
}

// Load parses command-line flags and the optional config file. Flags
// override file values. A help request or an unrecognized flag is surfaced
// as an error so the caller can exit without touching the SMC.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	errFactory := errors.New()

	fs := newFlagSet()
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errFactory.New(errors.ErrHelpRequested)
		}

		return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("database", defaultDBPath)

	configureFile(v, fs)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Flags override config file values
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := validateLogLevel(config.LogLevel); err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

func configureFile(v *viper.Viper, fs *pflag.FlagSet) {
	if path, err := fs.GetString("config"); err == nil && path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		return
	}

	if path := os.Getenv("SMCFLUX_CONFIG"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		return
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(defaultConfigPath)
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}

	return errors.New().WithData(errors.ErrInvalidLogLevel, level)
}

// normalize expands the -a shorthand and applies the no-flags default
// (CPU, GPU, fans, WiFi and SSD, but not the full registry).
func (c *Config) normalize() {
	if c.All {
		c.CPU = true
		c.GPU = true
		c.Fans = true
	}

	if !c.CPU && !c.GPU && !c.WiFi && !c.SSD && !c.Fans && !c.Everything {
		c.CPU = true
		c.GPU = true
		c.Fans = true
		c.WiFi = true
		c.SSD = true
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigSearchDepth     = "search-depth"
	ConfigSearchThreads   = "search-threads"
	ConfigSearchTimeLimit = "search-time-limit"
	ConfigPlayerOne       = "player-one"
	ConfigPlayerTwo       = "player-two"
	ConfigHistoryFile     = "history-file"
	ConfigCPUProfile      = "cpu-profile"
	ConfigConfigFile      = "config"
)

const (
	PlayerTypeHuman    = "human"
	PlayerTypeComputer = "computer"
)

// DefaultSearchDepth is the number of plies the computer looks ahead.
const DefaultSearchDepth = 4

var ErrBadSetting = errors.New("bad setting")

// Config holds all settings. Flags win over environment variables
// (LADDER_ prefix, dashes as underscores), which win over the config file.
type Config struct {
	*viper.Viper
	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSearchDepth, DefaultSearchDepth)
	c.SetDefault(ConfigSearchThreads, 1)
	c.SetDefault(ConfigSearchTimeLimit, 0)
	c.SetDefault(ConfigPlayerOne, PlayerTypeHuman)
	c.SetDefault(ConfigPlayerTwo, PlayerTypeComputer)
	c.SetDefault(ConfigHistoryFile, filepath.Join(os.TempDir(), "ladder-history"))
	c.SetDefault(ConfigCPUProfile, "")
}

// Load reads flags from args, then the environment and the config file if
// one was named.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
		c.setDefaults()
	}
	fs := pflag.NewFlagSet("ladder", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigSearchDepth, DefaultSearchDepth, "plies searched by the computer player")
	fs.Int(ConfigSearchThreads, 1, "goroutines used to search the root moves")
	fs.Int(ConfigSearchTimeLimit, 0, "seconds allowed per search, 0 for no limit")
	fs.String(ConfigPlayerOne, PlayerTypeHuman, "human or computer")
	fs.String(ConfigPlayerTwo, PlayerTypeComputer, "human or computer")
	fs.String(ConfigHistoryFile, c.GetString(ConfigHistoryFile), "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigConfigFile, "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("ladder")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
		log.Debug().Str("file", c.ConfigFileUsed()).Msg("read-config-file")
	}
	return c.Validate()
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Validate checks that numeric and enum settings are in range.
func (c *Config) Validate() error {
	if c.GetInt(ConfigSearchDepth) < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrBadSetting, ConfigSearchDepth)
	}
	if c.GetInt(ConfigSearchThreads) < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrBadSetting, ConfigSearchThreads)
	}
	if c.GetInt(ConfigSearchTimeLimit) < 0 {
		return fmt.Errorf("%w: %s cannot be negative", ErrBadSetting, ConfigSearchTimeLimit)
	}
	for _, k := range []string{ConfigPlayerOne, ConfigPlayerTwo} {
		switch c.GetString(k) {
		case PlayerTypeHuman, PlayerTypeComputer:
		default:
			return fmt.Errorf("%w: %s must be human or computer", ErrBadSetting, k)
		}
	}
	return nil
}

// SanitizedSettings is what gets logged at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// Write persists the current settings to the config file in use, or to
// path if no file was loaded.
func (c *Config) Write(path string) error {
	if used := c.ConfigFileUsed(); used != "" && path == "" {
		path = used
	}
	if path == "" {
		return fmt.Errorf("%w: no config file to write", ErrBadSetting)
	}
	return c.WriteConfigAs(path)
}

package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	logAdapter "github.com/bft-labs/countryreport/internal/adapters/log"
	"github.com/bft-labs/countryreport/internal/domain"
)

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "COUNTRYREPORT_"

// Defaults reproduce the fixed layout the report has always used.
const (
	DefaultInputPath = "src/resources/week8countries.txt"
	DefaultRootDir   = "src"
	DefaultSubDir    = "matches"
	DefaultFileName  = "data.txt"
)

// Config holds CLI configuration for countryreport.
type Config struct {
	InputPath string
	RootDir   string
	SubDir    string
	FileName  string

	BlankLines string
	LogLevel   string

	Watch    bool
	Debounce time.Duration
	Summary  bool

	PublishBucket   string
	PublishKey      string
	PublishEndpoint string
	PublishRegion   string
	AccessKeyID     string
	SecretAccessKey string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		RootDir:    DefaultRootDir,
		SubDir:     DefaultSubDir,
		FileName:   DefaultFileName,
		BlankLines: string(domain.BlankLineAbort),
		LogLevel:   "info",
		Debounce:   200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input is required")
	}
	if c.RootDir == "" {
		return fmt.Errorf("root-dir is required")
	}
	if c.SubDir == "" {
		return fmt.Errorf("sub-dir is required")
	}
	if c.FileName == "" {
		return fmt.Errorf("file-name is required")
	}

	if _, err := domain.ParseBlankLinePolicy(c.BlankLines); err != nil {
		return fmt.Errorf("blank-lines: %w", err)
	}
	if _, err := logAdapter.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	if c.PublishBucket == "" {
		return nil
	}
	if c.PublishKey == "" {
		c.PublishKey = c.FileName
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("access key id and secret access key must be set together")
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.SecretAccessKey != "" {
		c.SecretAccessKey = "*****"
	}
	return c
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}

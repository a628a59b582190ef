package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input           string `toml:"input"`
	RootDir         string `toml:"root_dir"`
	SubDir          string `toml:"sub_dir"`
	FileName        string `toml:"file_name"`
	BlankLines      string `toml:"blank_lines"`
	LogLevel        string `toml:"log_level"`
	Watch           *bool  `toml:"watch"`
	Debounce        string `toml:"debounce"`
	Summary         *bool  `toml:"summary"`
	PublishBucket   string `toml:"publish_bucket"`
	PublishKey      string `toml:"publish_key"`
	PublishEndpoint string `toml:"publish_endpoint"`
	PublishRegion   string `toml:"publish_region"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.countryreport/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".countryreport", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.InputPath)
	s.setString("root-dir", fc.RootDir, &cfg.RootDir)
	s.setString("sub-dir", fc.SubDir, &cfg.SubDir)
	s.setString("file-name", fc.FileName, &cfg.FileName)
	s.setString("blank-lines", fc.BlankLines, &cfg.BlankLines)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("publish-bucket", fc.PublishBucket, &cfg.PublishBucket)
	s.setString("publish-key", fc.PublishKey, &cfg.PublishKey)
	s.setString("publish-endpoint", fc.PublishEndpoint, &cfg.PublishEndpoint)
	s.setString("publish-region", fc.PublishRegion, &cfg.PublishRegion)
	s.setString("access-key-id", fc.AccessKeyID, &cfg.AccessKeyID)
	s.setString("secret-access-key", fc.SecretAccessKey, &cfg.SecretAccessKey)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("summary", fc.Summary, &cfg.Summary)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

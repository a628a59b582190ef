package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (COUNTRYREPORT_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(name string) string { return os.Getenv(EnvPrefix + name) }

	s.setString("input", env("INPUT"), &cfg.InputPath)
	s.setString("root-dir", env("ROOT_DIR"), &cfg.RootDir)
	s.setString("sub-dir", env("SUB_DIR"), &cfg.SubDir)
	s.setString("file-name", env("FILE_NAME"), &cfg.FileName)
	s.setString("blank-lines", env("BLANK_LINES"), &cfg.BlankLines)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)
	s.setString("publish-bucket", env("PUBLISH_BUCKET"), &cfg.PublishBucket)
	s.setString("publish-key", env("PUBLISH_KEY"), &cfg.PublishKey)
	s.setString("publish-endpoint", env("PUBLISH_ENDPOINT"), &cfg.PublishEndpoint)
	s.setString("publish-region", env("PUBLISH_REGION"), &cfg.PublishRegion)
	s.setString("access-key-id", env("ACCESS_KEY_ID"), &cfg.AccessKeyID)
	s.setString("secret-access-key", env("SECRET_ACCESS_KEY"), &cfg.SecretAccessKey)

	if err := s.setDuration("debounce", env("DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	if err := s.setBoolFromString("watch", env("WATCH"), &cfg.Watch); err != nil {
		return err
	}
	if err := s.setBoolFromString("summary", env("SUMMARY"), &cfg.Summary); err != nil {
		return err
	}

	return nil
}

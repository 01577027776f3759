package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort         = 3333
	DefaultFlagsFile    = "flags.yml"
	DefaultCow          = "default"
	DefaultBalloonWidth = 40
)

type Config struct {
	Port         int    `yaml:"port"`
	FlagsFile    string `yaml:"flagsFile"`
	WatchFlags   *bool  `yaml:"watchFlags"`
	Cow          string `yaml:"cow"`
	BalloonWidth uint   `yaml:"balloonWidth"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
	LogFormat    string `yaml:"logFormat"`
}

// ShouldWatchFlags reports whether the flags file is watched for changes.
// Watching is on unless the config turns it off explicitly.
func (c Config) ShouldWatchFlags() bool {
	return c.WatchFlags == nil || *c.WatchFlags
}

var LoadConfig = func(path string) Config {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			cfg = Config{}
		}
	}

	return applyConfigDefaults(cfg)
}

func applyConfigDefaults(cfg Config) Config {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.FlagsFile == "" {
		cfg.FlagsFile = DefaultFlagsFile
	}
	if cfg.Cow == "" {
		cfg.Cow = DefaultCow
	}
	if cfg.BalloonWidth == 0 {
		cfg.BalloonWidth = DefaultBalloonWidth
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg
}

// Package config provides configuration management for psync.
package config

import (
	"time"
)

// Clone protocols accepted by github.clone_protocol.
const (
	CloneProtocolHTTPS = "https"
	CloneProtocolSSH   = "ssh"
)

// Config represents the application configuration.
type Config struct {
	BaseFolder        string        `yaml:"base_folder"         validate:"required"`
	RegistryFile      string        `yaml:"registry_file"       validate:"required"`
	LogFile           string        `yaml:"log_file"`
	LogLevel          string        `yaml:"log_level"           validate:"omitempty,oneof=debug info warn error"`
	MaxWorkers        int           `yaml:"max_workers"         validate:"min=1,max=64"`
	DefaultBranch     string        `yaml:"default_branch"      validate:"required"`
	FetchBeforeStatus bool          `yaml:"fetch_before_status"`
	WatchDebounce     time.Duration `yaml:"watch_debounce"      validate:"min=0"`
	GitHub            GitHubConfig  `yaml:"github"`
}

// GitHubConfig holds the settings used to resolve owner/repo shorthands.
type GitHubConfig struct {
	CloneProtocol string `yaml:"clone_protocol" validate:"oneof=https ssh"`
}

// expandTildes replaces a leading ~ in every path setting.
func (c *Config) expandTildes(expand func(string) (string, error)) error {
	for _, p := range []*string{&c.BaseFolder, &c.RegistryFile, &c.LogFile} {
		if *p == "" {
			continue
		}
		expanded, err := expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

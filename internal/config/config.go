package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Database DatabaseConfig `yaml:"database"`
	Watch    WatchConfig    `yaml:"watch"`
	LogLevel string         `yaml:"log_level"`
}

// GitHubConfig describes the upstream profile source. UserURL and ReposURL
// carry a {handle} placeholder.
type GitHubConfig struct {
	UserURL        string        `yaml:"user_url"`
	ReposURL       string        `yaml:"repos_url"`
	ReposPerPage   int           `yaml:"repos_per_page"`
	MaxRepoPages   int           `yaml:"max_repo_pages"`
	MaxRecentRepos int           `yaml:"max_recent_repos"`
	Timeout        time.Duration `yaml:"timeout"`
	Token          string        `yaml:"token"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	CacheDir       string        `yaml:"cache_dir"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// WatchConfig drives the periodic re-scan scheduler.
type WatchConfig struct {
	Handles  []string      `yaml:"handles"`
	Interval time.Duration `yaml:"interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	return cfg
}

func (c *Config) setDefaults() {
	if c.GitHub.UserURL == "" {
		c.GitHub.UserURL = "https://api.github.com/users/{handle}"
	}
	if c.GitHub.ReposURL == "" {
		c.GitHub.ReposURL = "https://api.github.com/users/{handle}/repos"
	}
	if c.GitHub.ReposPerPage == 0 {
		c.GitHub.ReposPerPage = 30
	}
	if c.GitHub.MaxRepoPages == 0 {
		c.GitHub.MaxRepoPages = 3
	}
	if c.GitHub.MaxRecentRepos == 0 {
		c.GitHub.MaxRecentRepos = 3
	}
	if c.GitHub.Timeout == 0 {
		c.GitHub.Timeout = 15 * time.Second
	}
	if c.GitHub.CacheTTL == 0 {
		c.GitHub.CacheTTL = time.Hour
	}
	if c.GitHub.CacheDir == "" {
		c.GitHub.CacheDir = ".cache/reputation_pulse"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/scans.db"
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = 6 * time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

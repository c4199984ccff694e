package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys,
// e.g. QUILL_CONTENT_PATH or QUILL_GIT_ENABLED.
const EnvPrefix = "QUILL"

// Config is the blog configuration.
type Config struct {
	// Root is the blog root: git work tree and base for relative paths.
	Root string `mapstructure:"-" yaml:"root"`

	ContentPath string    `mapstructure:"content_path" yaml:"content_path"`
	Editor      string    `mapstructure:"editor" yaml:"editor"`
	CommitType  string    `mapstructure:"commit_type" yaml:"commit_type"`
	Git         GitConfig `mapstructure:"git" yaml:"git"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-" yaml:"file,omitempty"`
}

// GitConfig controls committing of new posts.
type GitConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		ContentPath: "content",
		CommitType:  "feat",
		Git:         GitConfig{Enabled: true},
	}
}

// ContentDir returns the absolute content directory.
func (c Config) ContentDir() string {
	if filepath.IsAbs(c.ContentPath) {
		return c.ContentPath
	}
	return filepath.Join(c.Root, c.ContentPath)
}

// LoadConfig reads <root>/quill.yaml if present, applies QUILL_* environment
// variables, and finally the explicit overrides (typically command-line flags).
func LoadConfig(root string, overrides map[string]any) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("content_path", def.ContentPath)
	v.SetDefault("editor", def.Editor)
	v.SetDefault("commit_type", def.CommitType)
	v.SetDefault("git.enabled", def.Git.Enabled)

	v.SetConfigName(strings.TrimSuffix(ConfigFileName, filepath.Ext(ConfigFileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Root = root
	cfg.File = v.ConfigFileUsed()

	if strings.TrimSpace(cfg.ContentPath) == "" {
		return Config{}, errors.New("content_path must not be empty")
	}
	return cfg, nil
}

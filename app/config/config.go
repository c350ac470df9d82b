package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds all runtime settings, loaded from config.yaml and INKWELL_*
// environment variables.
type Config struct {
	Addr      string `mapstructure:"addr" validate:"required"`
	PostsDir  string `mapstructure:"postsDir" validate:"required"`
	PostExt   string `mapstructure:"postExt" validate:"required"`
	ViewsDir  string `mapstructure:"viewsDir" validate:"required"`
	StaticDir string `mapstructure:"staticDir" validate:"required"`
	Runner    Runner `mapstructure:"runner"`
}

// Runner configures the outbound code-execution proxy.
type Runner struct {
	URL      string        `mapstructure:"url" validate:"required,url"`
	Token    string        `mapstructure:"token"`
	FileName string        `mapstructure:"fileName" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

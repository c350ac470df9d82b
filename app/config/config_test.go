package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Addr:      ":8080",
		PostsDir:  "post",
		PostExt:   ".md",
		ViewsDir:  "app/views",
		StaticDir: "static",
		Runner: Runner{
			URL:      "https://glot.io/api/run/python/latest",
			FileName: "main.py",
			Timeout:  30 * time.Second,
		},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateMissingPostsDir(t *testing.T) {
	cfg := validConfig()
	cfg.PostsDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateBadRunnerURL(t *testing.T) {
	cfg := validConfig()
	cfg.Runner.URL = "not a url"
	assert.Error(t, cfg.Validate())
}

func TestValidateTokenOptional(t *testing.T) {
	cfg := validConfig()
	cfg.Runner.Token = ""
	assert.NoError(t, cfg.Validate())
}

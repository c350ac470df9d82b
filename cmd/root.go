package cmd

import (
	"fmt"
	"os"
	"strings"

	"inkwell/app/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cliVersion = "1.0.0"

var (
	cfgFile   string
	appConfig config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "inkwell",
	Short:   "Inkwell - a small personal blog server",
	Version: cliVersion,
	Long: `Inkwell serves a directory of markdown posts as a personal website
and forwards code snippets to a remote execution service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return initializeConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig() error {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("postsDir", "post")
	v.SetDefault("postExt", ".md")
	v.SetDefault("viewsDir", "app/views")
	v.SetDefault("staticDir", "static")
	v.SetDefault("runner.url", "https://glot.io/api/run/python/latest")
	// The empty default keeps the key visible to viper so INKWELL_RUNNER_TOKEN
	// is picked up during Unmarshal.
	v.SetDefault("runner.token", "")
	v.SetDefault("runner.fileName", "main.py")
	v.SetDefault("runner.timeout", "30s")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("INKWELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		logger.Info().Str("file", v.ConfigFileUsed()).Msg("using config file")
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}

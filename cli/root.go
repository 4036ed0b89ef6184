// Package cli contains the blogctl commands
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hqpr/simple-blog/internal/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbose   bool
	colorFlag string
	settings  = viper.New()
	logger    = slog.New(slog.NewTextHandler(os.Stderr, nil))
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Command line client for the simple-blog server",
	Long: `blogctl talks to a running simple-blog server.

Example usage:
  blogctl more --base-url http://localhost:8000            # fetch page 2 of the main list
  blogctl more --url /blog/author/7/ --all                 # every remaining page of an author
  blogctl more --url /blog/category/1/ --url /blog/ --page 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .blogctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().String("base-url", "http://localhost:8000", "server origin")

	_ = settings.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

// initConfig reads the config file and BLOGCTL_* variables.
func initConfig() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
	} else {
		settings.SetConfigName(".blogctl")
		settings.SetConfigType("yaml")
		settings.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			settings.AddConfigPath(filepath.Join(home, ".config", "blogctl"))
		}
	}

	settings.SetEnvPrefix("BLOGCTL")
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	settings.AutomaticEnv()
	settings.SetDefault("output.colors", true)

	if err := settings.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger.Debug("configuration loaded",
		"config_file", settings.ConfigFileUsed(),
		"base_url", settings.GetString("base_url"),
	)
	return nil
}

func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	useColors := output.ResolveColors(mode, settings.GetBool("output.colors"))
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColors), nil
}

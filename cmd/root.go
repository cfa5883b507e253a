// Package cmd contains the voidpdev command line.
package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/Samandar-Komilov/voidpdev/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     map[string]string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "voidpdev",
	Short: "Portfolio and blog backend",
	Long: `voidpdev serves a personal portfolio and blog as a JSON API.

Example usage:
  voidpdev serve                # Start the HTTP server
  voidpdev migrate              # Create or update tables
  voidpdev import ./posts       # Load Markdown posts with front matter`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// initConfig loads .env, reads the environment and overlays SSM parameters
// when SSM_PARAMETER_PATH is set.
func initConfig(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	config.LoadDotEnv(envFile)
	cfg = config.New()
	setupLogging(cfg)

	if parameterPath := config.GetString(cfg, "SSM_PARAMETER_PATH", ""); parameterPath != "" {
		client, err := config.NewSSMClient(ctx)
		if err != nil {
			return err
		}
		loaded, err := config.LoadSSM(ctx, client, parameterPath, cfg)
		if err != nil {
			return err
		}
		// Parameter Store may change the logging keys too.
		setupLogging(cfg)
		log.Info().Int("parameters", loaded).Str("path", parameterPath).Msg("Loaded configuration from SSM")
	}

	log.Debug().Str("version", version).Msg("Configuration loaded")
	return nil
}

// setupLogging configures the global zerolog logger from LOG_LEVEL and
// LOG_FORMAT (json or console).
func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(config.GetString(c, "LOG_FORMAT", "json"), "console") {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

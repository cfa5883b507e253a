package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Samandar-Komilov/voidpdev/api"
	"github.com/Samandar-Komilov/voidpdev/config"
	"github.com/Samandar-Komilov/voidpdev/database"
	"github.com/Samandar-Komilov/voidpdev/media"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info().Str("version", version).Msg("Initializing app...")

	normalizer, err := newNormalizer(cfg)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	resolver, err := media.NewResolver(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	server, err := api.NewServer(cfg, api.Dependencies{
		Database:   database.New(db),
		Normalizer: normalizer,
		Sanitizer:  newSanitizer(cfg),
		Media:      resolver,
	})
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := serveExitError(<-errChannel)
	if fatalErr != nil {
		log.Error().Err(fatalErr).Msg("Closing server")
	} else {
		log.Info().Msg("Closing server")
	}

	server.ShutdownGracefully(time.Duration(config.GetInt(cfg, "SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second)
	return fatalErr
}

// interruptError reports the signal that stopped the server.
type interruptError struct {
	signal os.Signal
}

func (e interruptError) Error() string {
	return fmt.Sprintf("received %s", e.signal)
}

// serveExitError returns nil for a requested stop and err otherwise, so a
// listener failure such as a port in use ends the process with a non-zero
// status.
func serveExitError(err error) error {
	var interrupt interruptError
	if err == nil || errors.As(err, &interrupt) || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serve: %w", err)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- interruptError{signal: <-c}
}

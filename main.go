package main

import (
	"os"

	"github.com/Samandar-Komilov/voidpdev/cmd"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("voidpdev failed")
		os.Exit(1)
	}
}

package main

import (
	"os"
	"tripavail/config"
	"tripavail/helper"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Interface("directions", helper.Directions).Msg("Migration direction is required")
	}

	cfg := config.Get()

	if err := helper.Run(cfg, helper.Direction(os.Args[1])); err != nil {
		log.Fatal().Err(err).Interface("directions", helper.Directions).Msg("Migration failed")
	}
}

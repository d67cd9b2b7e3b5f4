package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/thomas-durand1/rusty-bot/internal/log"
	"github.com/thomas-durand1/rusty-bot/internal/pretty"
	"github.com/thomas-durand1/rusty-bot/pkg/config"
	"github.com/thomas-durand1/rusty-bot/pkg/store"
)

func main() {
	godotenv.Load()

	// Stage only the settings present in the environment, everything
	// else keeps its default
	b := config.NewBuilder()

	if v := os.Getenv("CLEAR_CALLS"); v != "" {
		b.ClearCalls(parseBool("CLEAR_CALLS", v))
	}
	if v := os.Getenv("MUTED"); v != "" {
		b.Mute(parseBool("MUTED", v))
	}
	if v := os.Getenv("FLOOD_DELAY"); v != "" {
		b.FloodDelay(config.Float(parseSeconds("FLOOD_DELAY", v)))
	}
	if v := os.Getenv("MAINTAINED"); v != "" {
		b.Maintained(config.Bool(parseBool("MAINTAINED", v)))
	}
	if v := os.Getenv("POOMP_DELAY"); v != "" {
		b.PoompDelay(config.Float(parseSeconds("POOMP_DELAY", v)))
	}
	if v := os.Getenv("ASSETS_DIR"); v != "" {
		b.AssetsDir(config.String(v))
	}

	conf := b.Build()
	if _, err := os.Stat(conf.AssetsDir()); os.IsNotExist(err) {
		log.Warn().Str("path", conf.AssetsDir()).Msg("assets directory does not exist")
	}

	// Command handlers reach the configuration through the shared
	// registry, so it has to be in place before any of them run
	st := store.New()
	config.RegisterConfig(st, config.NewShared(conf))

	log.Info().
		Bool("clear_calls", conf.ClearCalls()).
		Bool("muted", conf.Muted()).
		Bool("maintained", conf.Maintained()).
		Str("flood_delay", pretty.Seconds(conf.FloodDelay())).
		Str("poomp_delay", pretty.Seconds(conf.PoompDelay())).
		Str("assets_dir", conf.AssetsDir()).
		Msg("configuration registered")
}

func parseBool(name, v string) bool {
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatal().Err(err).Str("value", v).Msgf("$%s is not a boolean", name)
	}
	return parsed
}

func parseSeconds(name, v string) float64 {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatal().Err(err).Str("value", v).Msgf("$%s is not a number of seconds", name)
	}
	return parsed
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"hanabi/config"
	"hanabi/experiments"
	"hanabi/meta"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// envOr returns the environment variable, or def when it is unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("HANABI_CONFIG", ""), "YAML experiment file; the built-in comparison of every policy when empty")
	games := flag.Int("games", meta.GAMES, "Number of matches per matchup")
	seed := flag.Uint64("seed", meta.SEED, "Seed of the first match's deck")
	parallel := flag.Int("parallel", meta.PARALLELISM, "Number of matches run at once")
	out := flag.String("out", envOr("HANABI_OUT", meta.OUTPUT_DIR), "Directory for CSV records; nothing is written when empty")
	moves := flag.Bool("moves", false, "Also record every move of every match")
	level := flag.String("log-level", envOr("HANABI_LOG_LEVEL", "info"), "Log level (debug logs every move)")
	flag.Parse()

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color.NoColor = true
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: color.NoColor})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	exp := config.Default()
	if *configPath != "" {
		exp, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
	}
	// Flags given explicitly override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			exp.Games = *games
		case "seed":
			exp.Seed = *seed
		case "parallel":
			exp.Parallelism = *parallel
		}
	})

	options := []experiments.Option{}
	if *moves {
		options = append(options, experiments.WithMoveRecords())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := experiments.Run(ctx, exp, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	report.Render(os.Stdout)

	if *out != "" {
		dir, err := report.Write(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to store records")
		}
		log.Info().Msgf("records written to %s", dir)
	}
}

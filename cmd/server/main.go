package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/app"
	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/config"
	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/web"
)

func main() {
	conf := initConfig()
	initLogger(conf)

	ctrl := app.NewController(nil)
	handler := web.NewServer(ctrl)

	log.Info().
		Str("session", ctrl.Session()).
		Str("addr", conf.GetAddr()).
		Msg("Starting Tic Tac Toe")

	if err := http.ListenAndServe(conf.GetAddr(), handler); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func initConfig() *config.Config {
	conf, err := config.Load("config.yml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	return conf
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

package logger

import (
	"io"
	"os"
	"time"

	"risecheckout/config"
	"risecheckout/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// UseOutput switches to JSON lines in production and a console writer
// everywhere else. Timestamps stay in UTC regardless of the business zone.
func UseOutput(config *config.Config, out io.Writer) {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	if config.Server.Env == constant.ServerEnvProduction {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = zerolog.New(out).With().Timestamp().Str("app", config.App.Name).Logger()

		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

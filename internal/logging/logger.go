package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LoggerService interface {
	Log(value string)
	LogWarning(value string)
	LogError(value string, err error)
	LogSuccess(value string)
}

type consoleLogger struct {
	log zerolog.Logger
}

func NewConsoleLogger() LoggerService {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return &consoleLogger{
		log: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

func (c *consoleLogger) Log(value string) {
	c.log.Info().Msg(value)
}

func (c *consoleLogger) LogWarning(value string) {
	c.log.Warn().Msg(value)
}

func (c *consoleLogger) LogError(value string, err error) {
	c.log.Error().Err(err).Msg(value)
}

func (c *consoleLogger) LogSuccess(value string) {
	c.log.Info().Bool("success", true).Msg(value)
}

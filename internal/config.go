package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config defines the client-side environment variables. The only
// externally meaningful knob is SERVER_URL, which selects both the REST
// endpoint and the stream endpoint.
type Config struct {
	ServerURL        string        `env:"SERVER_URL,default=http://localhost:5000" validate:"required,url"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	SessionDBPath    string        `env:"SESSION_DB_PATH,default=.chitchat/session" validate:"required"`
	TypingIdle       time.Duration `env:"TYPING_IDLE_TIMEOUT,default=2s" validate:"required"`
	TypingHardExpiry time.Duration `env:"TYPING_HARD_EXPIRY,default=5s" validate:"required"`
	ReconnectBackoff time.Duration `env:"RECONNECT_INITIAL_BACKOFF,default=1s" validate:"required"`
	ReconnectMax     time.Duration `env:"RECONNECT_MAX_BACKOFF,default=30s" validate:"required"`
	StreamBufferSize int           `env:"STREAM_BUFFER_SIZE,default=256" validate:"gt=0"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

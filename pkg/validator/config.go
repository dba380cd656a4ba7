package validator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/ruleval/pkg/config"
	"github.com/dmitrymomot/ruleval/pkg/logger"
	"github.com/dmitrymomot/ruleval/pkg/messages"
)

// Config describes a Validator through environment variables.
type Config struct {
	MessagesPath    string   `env:"VALIDATOR_MESSAGES_PATH"`
	ImageExtensions []string `env:"VALIDATOR_IMAGE_EXTENSIONS" envSeparator:","`
	ExtendedRules   bool     `env:"VALIDATOR_EXTENDED_RULES" envDefault:"false"`
	LogLevel        string   `env:"VALIDATOR_LOG_LEVEL" envDefault:"error"`
	LogFormat       string   `env:"VALIDATOR_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment. The given dotenv files only
// supply variables the process environment does not set; among the files the
// later one wins.
func LoadConfig(files ...string) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, files...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Validator from cfg. Message templates found at
// cfg.MessagesPath override the built-in ones. Options passed in opts are
// applied after the ones derived from cfg.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Validator, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("unknown log format %q", cfg.LogFormat))
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
	)

	base := []Option{WithLogger(log)}
	if len(cfg.ImageExtensions) > 0 {
		base = append(base, WithImageExtensions(cfg.ImageExtensions...))
	}
	if cfg.ExtendedRules {
		base = append(base, WithExtendedRules())
	}

	if cfg.MessagesPath != "" {
		parser := messages.NewParserForFile(cfg.MessagesPath)
		if parser == nil {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("unsupported messages file %q", cfg.MessagesPath))
		}
		catalog, err := messages.Load(ctx, messages.NewFileSource(parser, cfg.MessagesPath))
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		base = append(base, WithMessages(catalog))
	}

	return New(append(base, opts...)...), nil
}

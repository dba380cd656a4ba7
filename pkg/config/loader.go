package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses environment variables into v using `env` struct tags.
//
// Values from the given dotenv files are layered under the process
// environment: a variable already set in the process wins over the files,
// and among the files the later one wins. The files are never written into
// the process environment. With no files only the process environment is
// used.
//
// Example:
//
//	type Config struct {
//		MessagesPath string `env:"VALIDATOR_MESSAGES_PATH"`
//		Extended     bool   `env:"VALIDATOR_EXTENDED_RULES" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, ".env"); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	environ := make(map[string]string)
	if len(files) > 0 {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		environ = fromFiles
	}
	for key, value := range env.ToMap(os.Environ()) {
		environ[key] = value
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

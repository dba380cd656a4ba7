// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct-tag based parsing and
// `github.com/joho/godotenv` for reading `.env` files. Unlike godotenv.Load,
// the files are read into a private map and never mutate the process
// environment, so loading configuration has no side effects on other code in
// the process.
//
// # Usage
//
//	type Config struct {
//	    MessagesPath string   `env:"VALIDATOR_MESSAGES_PATH"`
//	    Extensions   []string `env:"VALIDATOR_IMAGE_EXTENSIONS" envSeparator:","`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, "./config/.env"); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Precedence
//
// Process environment > later files > earlier files > `envDefault` tags.
//
// # Error Handling
//
// Errors wrap ErrReadingEnvFile or ErrParsingConfig and can be checked with
// errors.Is. MustLoad panics instead of returning an error.
package config

package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingEnvFile is returned when a dotenv file cannot be read or parsed.
	ErrReadingEnvFile = errors.New("failed to read env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

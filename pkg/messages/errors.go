package messages

import "errors"

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// ErrInvalidTemplate is returned when a catalog entry is not a string.
	ErrInvalidTemplate = errors.New("message template must be a string")

	ErrLoadingFileCancelled = errors.New("loading message file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read message file")
	ErrFailedToParseFile    = errors.New("failed to parse message file")
	ErrEmptyFile            = errors.New("message file is empty")

	ErrLoadingDirectoryCancelled = errors.New("loading messages from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read message directory")
	ErrNoCatalogFiles            = errors.New("no message files found")

	// ErrInvalidSource is returned for sources built with a nil parser or an empty path.
	ErrInvalidSource = errors.New("invalid message source")
)

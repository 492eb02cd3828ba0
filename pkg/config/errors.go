package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse     = errors.New("failed to parse config file")
	ErrConfigAlreadyExists = errors.New("configuration file already exists")
	// Configuration validation errors.
	ErrConfigInvalid = errors.New("invalid configuration")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("psync configuration not found. Run 'psync init' to initialize")
)

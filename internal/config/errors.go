package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration carries values no source may legally set.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative iteration count or page limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// Package config loads the astrofit YAML configuration.
//
// ${VAR} references are expanded from the environment after an optional
// .env file next to the config has been loaded. Missing optional fields are
// filled from the Default* constants; Validate checks ranges and names.
package config

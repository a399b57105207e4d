// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. Environment
// variables use the SIGNUP_ prefix, e.g. SIGNUP_SERVER_PORT.
package config

// Package config loads and validates the service configuration from a .env file,
// QA_-prefixed environment variables and an optional config.yaml, keeping settings
// separate from the code that uses them.
package config

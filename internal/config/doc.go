// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the server and LLM settings while keeping configuration details
// separate from request handling.
package config

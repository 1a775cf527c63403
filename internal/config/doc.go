// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to the server, database, and CORS settings needed by
// other components.
package config

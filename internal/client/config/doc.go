// Package config loads runtime settings for the VidTube terminal client.
//
// # Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after a .env file in the working directory has
//     been loaded with godotenv. Variables already set win over .env.
//  3. An optional JSON file named by -c or -config.
//  4. Command-line flags.
//
// # Environment
//
//	VIDTUBE_IDENTITY_URL   identity origin base URL
//	VIDTUBE_LEGACY_URL     legacy (video) origin base URL
//	VIDTUBE_STORE          path of the local session database
//	VIDTUBE_TIMEOUT        per-request timeout, e.g. "10s"
//	VIDTUBE_LOG_FORMAT     text, json or zerolog
//	VIDTUBE_LOG_LEVEL      debug, info, warn or error
//
// # Flags
//
//	-i string   identity origin base URL
//	-l string   legacy origin base URL
//	-s string   session database path
//	-t int      request timeout in seconds
//	-log string log level
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and 10000000000 are equivalent:
//
//	{
//	  "identity_url": "https://api.example.com/prod",
//	  "legacy_url": "http://localhost:8080/api",
//	  "store_path": "session.db",
//	  "request_timeout": "10s",
//	  "log_format": "text",
//	  "log_level": "info"
//	}
package config

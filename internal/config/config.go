// Package config loads runtime settings from the environment.
package config

import "os"

// Config carries every runtime setting the hub reads.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// SnapshotDB is the path of the local SQLite mirror.
	SnapshotDB string
	// DatabaseURL, when set, switches the snapshot store to PostgreSQL.
	DatabaseURL string
	// BackendURL, when set, enables the remote hub backend.
	BackendURL string
	// TokenSecret signs the tokens minted for offline logins.
	TokenSecret string
}

// Load reads the configuration, applying defaults for anything unset.
func Load() Config {
	return Config{
		Addr:        env("ADDR", ":8080"),
		SnapshotDB:  env("SNAPSHOT_DB", "./wellnesshub.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		BackendURL:  os.Getenv("BACKEND_URL"),
		TokenSecret: env("TOKEN_SECRET", "wellnesshub-dev-secret"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

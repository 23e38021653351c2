// Package main is the entry point for the ElectroEvo server.
//
// main() stays minimal: read configuration from the environment, build
// the logger, create the server, start it. All actual logic lives in the
// internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeshaw/envdecode"

	"github.com/mahdirahman356/electro-evo-server/internal/server"
)

// config is decoded straight from the environment. ACCESS_TOKEN_SECRET is
// the only variable with no usable default — the server refuses to start
// without it rather than signing sessions with a guessable value.
//
// CORS_ORIGINS is a comma-separated list; the defaults are the deployed
// frontend origins plus the local Vite dev server.
type config struct {
	Port        int    `env:"PORT,default=5000" description:"HTTP listen port"`
	DBPath      string `env:"DB_PATH,default=data/electroevo.db" description:"path to the SQLite database file"`
	TokenSecret string `env:"ACCESS_TOKEN_SECRET,required" description:"JWT signing secret, at least 16 characters"`
	CORSOrigins string `env:"CORS_ORIGINS,default=http://localhost:5173;https://electroevo-89e11.firebaseapp.com;https://electroevo-89e11.web.app" description:"semicolon-separated allowed browser origins"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Make sure the directory for the database file exists; sqlite will
	// create the file itself but not its parent directories.
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", dbDir),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DBPath:      cfg.DBPath,
		TokenSecret: cfg.TokenSecret,
		CORSOrigins: strings.Split(cfg.CORSOrigins, ";"),
	}, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down via SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

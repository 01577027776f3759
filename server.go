package moo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-barry/moo/core"
)

const DefaultConfigPath = "moo.config.yml"

type RuntimeConfig struct {
	Env        string
	Port       int
	ConfigPath string
}

var Listen = net.Listen

var Serve = func(ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.Serve(ln)
}

var Exit = os.Exit

var Start = func(cfg RuntimeConfig) {
	config := LoadRuntimeConfig(cfg)
	logger := core.NewLogger(config.LogFormat, config.DebugLogs || cfg.Env == "dev", os.Stderr)

	addr, handler, watcher := BuildServer(cfg, config, logger)
	defer watcher.Close()

	ln, err := Listen("tcp", addr)
	if err != nil {
		fail(err)
		return
	}

	port := config.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	logger.Info(fmt.Sprintf("Server running on port %d", port), "env", cfg.Env)

	if err := Serve(ln, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "❌ Server failed: %v\n", err)
	Exit(1)
}

// LoadRuntimeConfig reads the config file named by cfg and applies the
// command line overrides on top of it.
func LoadRuntimeConfig(cfg RuntimeConfig) core.Config {
	path := cfg.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	config := core.LoadConfig(path)
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}
	return config
}

// BuildServer wires the handler for cfg. The returned closer stops the flags
// file watcher and is safe to call when watching is off.
func BuildServer(cfg RuntimeConfig, config core.Config, logger *slog.Logger) (string, http.Handler, io.Closer) {
	if logger == nil {
		logger = core.NewDiscardLogger()
	}

	installFlags(config.FlagsFile, logger)

	router := core.NewRouter(config, core.RuntimeContext{
		Env:      cfg.Env,
		Flags:    core.NewFlagClient(),
		Renderer: core.NewCowRenderer(config, logger),
		Logger:   logger,
	})

	mux := http.NewServeMux()
	mux.Handle("/", router)

	var onReload func(*core.FlagFile)
	if cfg.Env == "dev" {
		broadcaster := core.NewFlagBroadcaster()
		mux.HandleFunc("/__moo_flags", broadcaster.Handler)
		onReload = broadcaster.BroadcastFlags
	}

	var watcher *core.FlagWatcher
	if config.ShouldWatchFlags() {
		w, err := core.WatchFlagFile(config.FlagsFile, logger, onReload)
		if err != nil {
			logger.Warn("flag file watch disabled", "path", config.FlagsFile, "error", err)
		}
		watcher = w
	}

	handler := core.Chain(mux,
		core.RecoveryMiddleware(logger),
		core.RequestIDMiddleware(),
		core.LoggingMiddleware(logger),
		core.ContentTypeMiddleware("text/plain"),
	)

	return fmt.Sprintf(":%d", config.Port), handler, watcher
}

// installFlags makes the flag provider ready before the listener opens.
// A missing or broken flags file leaves the no-op provider in place, so
// every flag resolves to its default.
func installFlags(path string, logger *slog.Logger) {
	file, err := core.InstallFlagProvider(path)
	switch {
	case err == nil:
		logger.Info("flag provider ready", "path", path, "flags", len(file.Flags))
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("flags file not found, flags resolve to defaults", "path", path)
	default:
		logger.Warn("flag provider not installed, flags resolve to defaults", "path", path, "error", err)
	}
}

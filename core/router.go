package core

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type RuntimeContext struct {
	Env      string
	Flags    FlagEvaluator
	Renderer Renderer
	Logger   *slog.Logger
}

type Router struct {
	config   Config
	flags    FlagEvaluator
	renderer Renderer
	logger   *slog.Logger
	mux      *http.ServeMux
}

var NewRouter = func(config Config, ctx RuntimeContext) http.Handler {
	logger := ctx.Logger
	if logger == nil {
		logger = NewDiscardLogger()
	}

	r := &Router{
		config:   config,
		flags:    ctx.Flags,
		renderer: ctx.Renderer,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	r.mux.HandleFunc("GET /{$}", r.serveGreeting)
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) serveGreeting(w http.ResponseWriter, req *http.Request) {
	withCows, err := EvaluateBoolean(req.Context(), r.flags, FlagWithCows, false)
	if err != nil {
		r.logger.Warn("flag evaluation fell back to default",
			"flag", FlagWithCows,
			"value", withCows,
			"error", err,
			"requestID", GetRequestID(req.Context()),
		)
	}

	body := SelectResponse(withCows, Greeting, r.renderer)

	w.Header().Set("Content-Type", "text/plain")
	if r.config.DebugHeaders {
		w.Header().Set("X-Moo-Flag", fmt.Sprintf("%s=%t", FlagWithCows, withCows))
	}
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body)
}

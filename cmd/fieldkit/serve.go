package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/dkoosis/fieldkit/internal/config"
	"github.com/dkoosis/fieldkit/internal/detect"
	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
	"github.com/dkoosis/fieldkit/pkg/render"
)

// maxRequestBody bounds POST /render bodies.
const maxRequestBody = 4 << 20

// runServe exposes rendering over HTTP until ctx is cancelled.
func runServe(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("serve", stderr, &flags)
	addr := fs.String("addr", ":8080", "Listen address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, code := newApp(ctx, fs, flags, stdout, stderr)
	if code >= 0 {
		return code
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	a.log.WithField("addr", *addr).Info("serving")
	fmt.Fprintf(stdout, "fieldkit: listening on %s\n", *addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(stderr, "fieldkit: %v\n", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(stderr, "fieldkit: shutdown: %v\n", err)
			return 1
		}
	}
	return 0
}

// renderRequest is the body of POST /render. Schema holds any schema
// document detect.Load understands.
type renderRequest struct {
	Title   string            `json:"title"`
	Schema  json.RawMessage   `json:"schema"`
	Record  map[string]any    `json:"record"`
	Mode    string            `json:"mode"`
	Context string            `json:"context"`
	Format  string            `json:"format"`
	View    map[string]any    `json:"view"`
	Errors  map[string]string `json:"errors"`
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/registry", a.handleRegistry)
	r.Get("/registry/{id}", a.handleRegistryEntry)
	r.Post("/render", a.handleRender)
	return r
}

func (a *app) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": middleware.GetReqID(r.Context()),
			"elapsed":    time.Since(start).String(),
		}).Debug("request")
	})
}

func (a *app) handleRegistry(w http.ResponseWriter, r *http.Request) {
	entries := a.registry.All(r.Context())
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries, "generation": a.registry.Generation()})
}

func (a *app) handleRegistryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, ok := a.registry.Get(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "unknown field type: "+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": e, "category": field.Classify(id).String()})
}

func (a *app) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if len(req.Schema) == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_SCHEMA", "schema is required")
		return
	}
	defs, _, err := detect.Load(req.Schema)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "INVALID_SCHEMA", err.Error())
		return
	}

	mode := a.cfg.Mode
	if req.Mode != "" {
		m, ok := field.ParseMode(req.Mode)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_MODE", "unknown mode: "+req.Mode)
			return
		}
		mode = m
	}
	ctxName := a.cfg.Context
	if req.Context != "" {
		ctxName = field.Context(req.Context)
	}
	format := req.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "llm" && format != "terminal" {
		writeError(w, http.StatusBadRequest, "INVALID_FORMAT", "unknown format: "+format)
		return
	}
	if req.Record == nil {
		req.Record = map[string]any{}
	}

	errs := req.Errors
	if errs == nil && mode == field.ModeForm {
		errs = topLevelErrors(defs, container.Validate(defs, req.Record, a.cfg.MaxDepth))
	}
	doc := render.Build(a.engine, req.Title, defs, req.Record, render.BuildOptions{
		Mode:    mode,
		Context: ctxName,
		View:    req.View,
		Errors:  errs,
	})

	// Terminal output over HTTP is always uncolored.
	out := selectRenderer(format, "mono", a.cfg.Width).Render(doc)
	if format == "json" {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("writeJSON encode failed")
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(v)
}

// Package api serves report rendering over HTTP.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/xlgrid/pkg/xlgrid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/config"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Server renders report definitions posted to it.
type Server struct {
	router chi.Router
	log    *log.Logger
	cfg    Config
	opts   xlgrid.Options
}

// NewServer creates and configures the HTTP server.
func NewServer(logger *log.Logger, cfg Config, opts xlgrid.Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	s := &Server{
		log:  logger,
		cfg:  cfg,
		opts: opts,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/plan", s.handlePlan)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	report, ok := s.decodeReport(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := xlgrid.RenderTo(&buf, report, s.opts); err != nil {
		s.renderFailed(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="report.xlsx"`)
	w.Write(buf.Bytes())
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	report, ok := s.decodeReport(w, r)
	if !ok {
		return
	}

	pages, err := xlgrid.Plan(report, s.opts)
	if err != nil {
		s.renderFailed(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"sheets": pages})
}

// decodeReport reads the request body in the format named by its
// Content-Type. JSON is assumed when none is given.
func (s *Server) decodeReport(w http.ResponseWriter, r *http.Request) (models.Report, bool) {
	format, err := requestFormat(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnsupportedMediaType)
		return models.Report{}, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return models.Report{}, false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return models.Report{}, false
	}

	report, err := config.Decode(bytes.NewReader(data), format)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return models.Report{}, false
	}
	return report, true
}

func (s *Server) renderFailed(w http.ResponseWriter, err error) {
	s.log.Warn("render failed", "error", err)
	jsonError(w, err.Error(), http.StatusUnprocessableEntity)
}

func requestFormat(r *http.Request) (config.Format, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return config.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", err
	}
	switch mt {
	case "application/json":
		return config.FormatJSON, nil
	case "application/toml":
		return config.FormatTOML, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return config.FormatYAML, nil
	}
	return "", errors.New("unsupported content type " + mt)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

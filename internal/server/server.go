package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"media-router/internal/analysis"
	"media-router/internal/config"
	"media-router/internal/health"
	"media-router/internal/models"
	"media-router/internal/router"
)

const (
	maxBodyBytes        = 1 << 20 // 1 MiB
	shutdownGracePeriod = 10 * time.Second
	readTimeout         = 30 * time.Second
	writeTimeout        = 45 * time.Second
	idleTimeout         = 120 * time.Second
)

type Server struct {
	cfg      config.Config
	router   *router.Router
	recorder *health.Recorder
	app      *echo.Echo
	address  string
}

// New constructs an HTTP server wired with routing and middleware.
func New(cfg config.Config, rt *router.Router, recorder *health.Recorder) (*Server, error) {
	if rt == nil {
		return nil, errors.New("router must not be nil")
	}
	if recorder == nil {
		return nil, errors.New("health recorder must not be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = envelopeErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency: true,
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"error", v.Error,
			)
			return nil
		},
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	srv := &Server{
		cfg:      cfg,
		router:   rt,
		recorder: recorder,
		app:      e,
		address:  fmt.Sprintf(":%d", cfg.Server.Port),
	}

	srv.registerRoutes()

	return srv, nil
}

// Handler exposes the wired HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.app
}

// Run starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	printStartupBanner(s.cfg.Server.Port)
	slog.Info("starting server", "addr", s.address)

	httpServer := &http.Server{
		Addr:         s.address,
		Handler:      s.app,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.app.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := s.app.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		slog.Info("server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) registerRoutes() {
	s.app.GET("/health", s.handleHealth)
	s.app.GET("/api/capabilities", s.handleCapabilities)
	s.app.POST("/api/generate", s.handleGenerate)
	s.app.POST("/api/analyze", s.handleAnalyze)
}

// generatePayload is the JSON body accepted by /api/generate. Every field
// except prompt is an optional override that bypasses inference.
type generatePayload struct {
	Prompt    string `json:"prompt"`
	Type      string `json:"type"`
	Theme     string `json:"theme"`
	Style     string `json:"style"`
	Animation string `json:"animation"`
	Duration  int    `json:"duration"`
}

type analyzePayload struct {
	Prompt string `json:"prompt"`
}

type analyzeResponse struct {
	Success        bool                  `json:"success"`
	Classification models.Classification `json:"classification"`
	Tips           []string              `json:"tips,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, s.recorder.Snapshot())
}

func (s *Server) handleCapabilities(c echo.Context) error {
	return c.JSON(http.StatusOK, s.router.Capabilities())
}

func (s *Server) handleGenerate(c echo.Context) error {
	var payload generatePayload
	if err := decodeRequestBody(c, &payload); err != nil {
		return err
	}

	prompt := strings.TrimSpace(payload.Prompt)
	if prompt == "" {
		return errMissingPrompt
	}
	if payload.Duration < 0 {
		return requestError{
			Status:  http.StatusBadRequest,
			Message: "duration must not be negative",
		}
	}

	overrides := analysis.Overrides{
		Theme:     strings.TrimSpace(payload.Theme),
		Style:     strings.TrimSpace(payload.Style),
		Animation: strings.TrimSpace(payload.Animation),
		Duration:  payload.Duration,
	}
	if t := strings.TrimSpace(payload.Type); t != "" && t != "auto" {
		mediaType, err := models.ParseMediaType(t)
		if err != nil {
			return requestError{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			}
		}
		overrides.MediaType = mediaType
	}

	envelope := s.router.Generate(c.Request().Context(), prompt, overrides)
	return c.JSON(http.StatusOK, envelope)
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var payload analyzePayload
	if err := decodeRequestBody(c, &payload); err != nil {
		return err
	}

	prompt := strings.TrimSpace(payload.Prompt)
	if prompt == "" {
		return errMissingPrompt
	}

	classification, tips := s.router.Analyze(prompt)
	return c.JSON(http.StatusOK, analyzeResponse{
		Success:        true,
		Classification: classification,
		Tips:           tips,
	})
}

func decodeRequestBody[T any](c echo.Context, target *T) error {
	req := c.Request()
	defer req.Body.Close()

	req.Body = http.MaxBytesReader(c.Response(), req.Body, maxBodyBytes)

	decoder := json.NewDecoder(req.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return requestError{
				Status:  http.StatusBadRequest,
				Message: "request body is required",
			}
		}
		return requestError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("invalid JSON payload: %v", err),
		}
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return requestError{
			Status:  http.StatusBadRequest,
			Message: "request body must contain a single JSON object",
		}
	}
	return nil
}

type requestError struct {
	Status  int
	Message string
	Example map[string]string
}

func (e requestError) Error() string {
	return e.Message
}

var errMissingPrompt = requestError{
	Status:  http.StatusBadRequest,
	Message: "prompt is required",
	Example: map[string]string{
		"prompt": "Create a ninja character image",
		"type":   "image",
	},
}

type errorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Example map[string]string `json:"example,omitempty"`
}

func writeError(c echo.Context, status int, message string, example map[string]string) error {
	return c.JSON(status, errorBody{
		Success: false,
		Error:   message,
		Example: example,
	})
}

func envelopeErrorHandler(err error, c echo.Context) {
	var reqErr requestError
	if errors.As(err, &reqErr) {
		_ = writeError(c, reqErr.Status, reqErr.Message, reqErr.Example)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = writeError(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message), nil)
		return
	}

	_ = writeError(c, http.StatusInternalServerError, "internal server error", nil)
}

func printStartupBanner(port int) {
	host := "127.0.0.1"
	fmt.Println()
	fmt.Println("media-router ready")
	fmt.Printf("Listening on http://%s:%d\n", host, port)
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/capabilities")
	fmt.Println("  POST /api/generate")
	fmt.Println("  POST /api/analyze")
	fmt.Printf("Example:\n  curl http://%s:%d/api/generate -H 'Content-Type: application/json' -d '{\"prompt\":\"Create a ninja character image\"}'\n\n", host, port)
}

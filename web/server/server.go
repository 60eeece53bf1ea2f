package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/go-preview-raytracer/pkg/output"
	"github.com/df07/go-preview-raytracer/pkg/renderer"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

// maxDimension bounds the frame size accepted from clients
const maxDimension = 8192

// Config contains the settings of the preview server
type Config struct {
	Port    int
	Scene   string // Initial preset name
	Width   int    // Initial frame width
	Height  int    // Initial frame height
	Render  renderer.RenderConfig
	Options scene.Options
	Quiet   bool // Do not echo log messages to stdout
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Port:   8080,
		Scene:  "default",
		Width:  640,
		Height: 480,
		Render: renderer.DefaultRenderConfig(),
	}
}

// Server exposes a render controller over HTTP
type Server struct {
	config     Config
	registry   *scene.Registry
	controller *renderer.Controller
	console    *Console
	echo       *echo.Echo
}

// StatsResponse represents render statistics
type StatsResponse struct {
	ID           string  `json:"id"`
	Scene        string  `json:"scene"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Depth        int     `json:"depth"`
	Workers      int     `json:"workers"`
	Tiles        int     `json:"tiles"`
	Rays         int64   `json:"rays"`
	RaysPerPixel float64 `json:"raysPerPixel"`
	ElapsedMs    int64   `json:"elapsedMs"`
}

// StatusResponse describes the current state of the controller
type StatusResponse struct {
	Scene           string         `json:"scene"`
	Width           int            `json:"width"`
	Height          int            `json:"height"`
	ReflectionDepth int            `json:"reflectionDepth"`
	Running         bool           `json:"running"`
	Renders         int64          `json:"renders"`
	LastRender      *StatsResponse `json:"lastRender,omitempty"`
}

// NewServer creates a server and starts rendering the initial scene
func NewServer(config Config, registry *scene.Registry) (*Server, error) {
	console := NewConsole(consoleLimit)
	s := &Server{
		config:     config,
		registry:   registry,
		controller: renderer.NewController(config.Render, NewWebLogger(console, config.Quiet)),
		console:    console,
	}

	initial, err := registry.ByName(config.Scene, config.Options)
	if err != nil {
		return nil, err
	}
	if err := s.controller.Start(initial, config.Width, config.Height); err != nil {
		return nil, fmt.Errorf("failed to start renderer: %w", err)
	}

	s.echo = s.routes()
	return s, nil
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/status", s.handleStatus)
	e.GET("/api/console", s.handleConsole)
	e.GET("/api/frame.png", s.handleFrame)
	e.GET("/api/inspect", s.handleInspect)

	e.POST("/api/refresh", s.handleRefresh)
	e.POST("/api/scene/:name", s.handleSetScene)
	e.POST("/api/depth", s.handleDepth)
	e.POST("/api/resize", s.handleResize)

	return e
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Controller returns the render controller driven by the server
func (s *Server) Controller() *renderer.Controller {
	return s.controller
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for the in-flight render
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	s.controller.Wait()
	return err
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.Info())
}

func (s *Server) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.status())
}

func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}

// handleFrame returns the current buffer as PNG. The frame may be mid-render.
func (s *Server) handleFrame(c echo.Context) error {
	label := ""
	if c.QueryParam("label") != "" {
		label = fmt.Sprintf("%s  depth %d", s.sceneName(), s.controller.ReflectionDepth())
	}

	var buf bytes.Buffer
	if err := output.EncodePNG(&buf, s.controller.Buffer().Image(), label); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleRefresh(c echo.Context) error {
	if err := s.controller.Refresh(); err != nil {
		return renderError(err)
	}
	return c.JSON(http.StatusAccepted, s.status())
}

func (s *Server) handleSetScene(c echo.Context) error {
	next, err := s.registry.ByName(c.Param("name"), s.config.Options)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err := s.controller.SetScene(next); err != nil {
		return renderError(err)
	}
	return c.JSON(http.StatusAccepted, s.status())
}

// handleDepth changes the reflection depth used by the next render.
// It accepts either ?delta=n or ?value=n.
func (s *Server) handleDepth(c echo.Context) error {
	var depth int

	switch {
	case c.QueryParam("value") != "":
		value, err := strconv.Atoi(c.QueryParam("value"))
		if err != nil || value < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "value must be a non-negative integer")
		}
		depth = s.controller.SetReflectionDepth(value)

	case c.QueryParam("delta") != "":
		delta, err := strconv.Atoi(c.QueryParam("delta"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "delta must be an integer")
		}
		depth = s.controller.ReflectionDepth()
		for ; delta > 0; delta-- {
			depth = s.controller.IncreaseReflectionDepth()
		}
		for ; delta < 0; delta++ {
			depth = s.controller.DecreaseReflectionDepth()
		}

	default:
		return echo.NewHTTPError(http.StatusBadRequest, "missing value or delta")
	}

	return c.JSON(http.StatusOK, map[string]int{"reflectionDepth": depth})
}

func (s *Server) handleResize(c echo.Context) error {
	width, err := parseIntParam(c, "width", 1, maxDimension)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	height, err := parseIntParam(c, "height", 1, maxDimension)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.controller.Resize(width, height); err != nil {
		return renderError(err)
	}
	return c.JSON(http.StatusAccepted, s.status())
}

func (s *Server) status() StatusResponse {
	buffer := s.controller.Buffer()
	status := StatusResponse{
		Scene:           s.sceneName(),
		Width:           buffer.Width(),
		Height:          buffer.Height(),
		ReflectionDepth: s.controller.ReflectionDepth(),
		Running:         s.controller.Running(),
		Renders:         s.controller.Renders(),
	}

	if stats, ok := s.controller.LastStats(); ok {
		status.LastRender = &StatsResponse{
			ID:           stats.ID,
			Scene:        stats.Scene,
			Width:        stats.Width,
			Height:       stats.Height,
			Depth:        stats.Depth,
			Workers:      stats.Workers,
			Tiles:        stats.Tiles,
			Rays:         stats.Rays,
			RaysPerPixel: stats.RaysPerPixel(),
			ElapsedMs:    stats.Duration.Milliseconds(),
		}
	}
	return status
}

func (s *Server) sceneName() string {
	if current := s.controller.Scene(); current != nil {
		return current.Name
	}
	return ""
}

// parseIntParam parses a required integer query parameter within [min, max]
func parseIntParam(c echo.Context, key string, min, max int) (int, error) {
	raw := c.QueryParam(key)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return value, nil
}

// renderError maps controller errors to HTTP errors
func renderError(err error) error {
	switch {
	case errors.Is(err, renderer.ErrInvalidSize):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, renderer.ErrBufferTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, renderer.ErrNoScene):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

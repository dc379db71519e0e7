package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/logger"
	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/parser"
	"github.com/rezonia/invoice-renderer/internal/render"
	"github.com/rezonia/invoice-renderer/internal/snapshot"
)

// Output formats for render endpoints
const (
	FormatHTML = "html"
	FormatJSON = "json"
)

const shutdownTimeout = 10 * time.Second

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// DefaultTemplate is used by POST /api/v1/render when the request
	// names no template
	DefaultTemplate render.TemplateID
	// Format controls number grouping and date layout
	Format format.Options
	// Logger receives request logs; nil discards them
	Logger *logger.Logger
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	renderer *render.Renderer
	decoders *parser.Registry
	log      *logger.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	log := config.Logger
	if log == nil {
		log = logger.NewNop()
	}
	if config.DefaultTemplate == "" {
		config.DefaultTemplate = render.DefaultTemplate
	}
	if config.Format.DateLayout == "" {
		config.Format = format.DefaultOptions()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(log.GinMiddleware())

	s := &Server{
		config:   config,
		router:   router,
		renderer: render.NewRenderer(render.WithOptions(config.Format)),
		decoders: parser.NewRegistry(),
		log:      log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/templates", s.handleTemplates)

		// Computation endpoints
		v1.POST("/totals", s.handleTotals)
		v1.POST("/validate", s.handleValidate)

		// Render endpoints
		v1.POST("/render", s.handleRender)
		v1.POST("/render/:template", s.handleRenderTemplate)
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("server listening", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Infow("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleTemplates(c *gin.Context) {
	templates := s.renderer.Registry().Templates()
	response := TemplatesResponse{
		Default:   string(s.config.DefaultTemplate),
		Templates: make([]TemplateInfo, 0, len(templates)),
	}
	for _, t := range templates {
		response.Templates = append(response.Templates, TemplateInfo{
			ID:          string(t.ID()),
			Name:        t.Name(),
			Description: t.Description(),
		})
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) handleTotals(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	snap, err := s.compute(body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleValidate(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := s.decoders.Decode(body)
	if err != nil {
		if isMalformed(err) {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ValidationResponse{Valid: false, Errors: model.ValidationMessages(err)})
		return
	}

	snap, err := snapshot.Assemble(input)
	if err != nil {
		c.JSON(http.StatusOK, ValidationResponse{Valid: false, Errors: model.ValidationMessages(err)})
		return
	}

	c.JSON(http.StatusOK, ValidationResponse{
		Valid:     true,
		SubTotal:  snap.Details.SubTotal.StringFixed(int32(snap.Precision)),
		Total:     snap.Details.TotalAmount.StringFixed(int32(snap.Precision)),
		Precision: snap.Precision,
	})
}

func (s *Server) handleRenderTemplate(c *gin.Context) {
	id := render.ParseTemplateID(c.Param("template"))
	if _, err := s.renderer.Registry().Get(id); err != nil {
		s.writeError(c, err)
		return
	}

	body, ok := readBody(c)
	if !ok {
		return
	}

	snap, err := s.compute(body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.writeDocument(c, id, snap, c.DefaultQuery("format", FormatHTML))
}

func (s *Server) handleRender(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: []string{err.Error()}})
		return
	}
	if len(req.Invoice) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing invoice"})
		return
	}

	id := render.ParseTemplateID(req.Template)
	if id == "" {
		id = s.config.DefaultTemplate
	}
	if _, err := s.renderer.Registry().Get(id); err != nil {
		s.writeError(c, err)
		return
	}

	snap, err := s.compute(req.Invoice)
	if err != nil {
		s.writeError(c, err)
		return
	}

	outputFormat := req.Format
	if outputFormat == "" {
		outputFormat = c.DefaultQuery("format", FormatHTML)
	}
	s.writeDocument(c, id, snap, outputFormat)
}

func (s *Server) writeDocument(c *gin.Context, id render.TemplateID, snap *model.Snapshot, outputFormat string) {
	if outputFormat != FormatHTML && outputFormat != FormatJSON {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported format " + outputFormat})
		return
	}

	doc, err := s.renderer.Render(id, snap)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if outputFormat == FormatJSON {
		c.JSON(http.StatusOK, RenderResponse{Document: doc, Snapshot: snap})
		return
	}

	page, err := doc.HTML()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// writeError maps core errors to status codes
func (s *Server) writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var unknown *model.UnknownTemplateError
	switch {
	case errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     unknown.Error(),
			Available: unknown.Available,
		})
	case isMalformed(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "malformed invoice payload",
			Details: model.ValidationMessages(err),
		})
	case model.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invoice validation failed",
			Details: model.ValidationMessages(err),
		})
	default:
		s.log.Errorw("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// Helper functions

// compute decodes a JSON or XML body and assembles its snapshot
func (s *Server) compute(body []byte) (*model.Snapshot, error) {
	input, err := s.decoders.Decode(body)
	if err != nil {
		return nil, err
	}
	return snapshot.Assemble(input)
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}
	return body, true
}

// isMalformed reports whether err is a syntax or format failure rather
// than a well-formed payload with bad values
func isMalformed(err error) bool {
	var ve *model.ValidationError
	return errors.As(err, &ve) && (ve.Rule == snapshot.RuleJSON || ve.Rule == parser.RuleFormat)
}

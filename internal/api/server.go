package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/1ekc/gfl-pages/internal/importer"
	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
	"github.com/1ekc/gfl-pages/internal/project"
	"github.com/1ekc/gfl-pages/internal/story"
)

// Server serves the editor API over HTTP and WebSocket.
type Server struct {
	bind   string
	logger *slog.Logger

	store    *media.Store
	importer *importer.Importer
	project  *project.Project

	docMu sync.Mutex
	doc   *story.GfStory
	alloc *story.Allocator

	upgrader websocket.Upgrader

	listener net.Listener
	server   *http.Server
}

// Options wires the server's collaborators.
type Options struct {
	Bind     string
	Logger   *slog.Logger
	Store    *media.Store
	Importer *importer.Importer
	Project  *project.Project
	Story    *story.GfStory
	Alloc    *story.Allocator
}

// NewServer builds the API server and its routes.
func NewServer(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Importer == nil || opts.Project == nil {
		return nil, errors.New("api server requires store, importer, and project")
	}
	if opts.Story == nil || opts.Alloc == nil {
		return nil, errors.New("api server requires a loaded story and allocator")
	}

	gin.SetMode(gin.ReleaseMode)

	srv := &Server{
		bind:     opts.Bind,
		logger:   logging.WithComponent(opts.Logger, "api"),
		store:    opts.Store,
		importer: opts.Importer,
		project:  opts.Project,
		doc:      opts.Story,
		alloc:    opts.Alloc,
		upgrader: websocket.Upgrader{
			// The editor UI runs on its own dev origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(srv.accessLog())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	srv.routes(router)

	srv.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return srv, nil
}

func (s *Server) routes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/media/:type", s.handleMediaList)
		api.POST("/media/:type", s.handleMediaAdd)
		api.DELETE("/media/:type/:name", s.handleMediaDelete)
		api.GET("/media/resolve", s.handleMediaResolve)
		api.POST("/media/import", s.handleMediaImport)
		api.GET("/media/:type/feed", s.handleMediaFeed)

		api.GET("/story", s.handleStoryGet)
		api.PUT("/story", s.handleStoryPut)
		api.POST("/story/lines", s.handleLineAppend)
		api.DELETE("/story/lines/:id", s.handleLineRemove)
	}
	router.GET("/objects/:id", s.handleObject)
}

// Start begins serving and arranges shutdown when the context ends.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			slog.String(logging.FieldRequestID, requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

func apiError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

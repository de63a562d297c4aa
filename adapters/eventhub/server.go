package eventhub

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
)

// Server exposes a Local hub over HTTP.
//
//	POST /events         deliver a JSON event, answer with the first reply
//	GET  /subscriptions  list subscription expressions
//	GET  /healthz        liveness
type Server struct {
	hub    *Local
	router *gin.Engine
}

// NewServer creates the HTTP front of hub.
func NewServer(hub *Local) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{hub: hub, router: router}
	router.GET("/healthz", s.handleHealth)
	router.GET("/subscriptions", s.handleSubscriptions)
	router.POST("/events", s.handlePublish)
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logging.FromContext(ctx).Info(ctx, "event hub listening", "addr", addr)
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscriptions": s.hub.Subscriptions()})
}

func (s *Server) handlePublish(c *gin.Context) {
	var ev model.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ev.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}
	reply, err := s.hub.Publish(c.Request.Context(), &ev)
	if err != nil && reply == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reply == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, reply)
}

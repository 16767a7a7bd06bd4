// Package status exposes a small HTTP endpoint with bot health and chain
// counters, handy for uptime probes and dashboards.
package status

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chainbot/internal/command"
	"chainbot/internal/storage"
	"chainbot/internal/version"
	"chainbot/pkg/util"
)

// Server serves /health and /stats until its context is cancelled.
type Server struct {
	addr      string
	registry  *command.Registry
	store     *storage.Storage
	startedAt time.Time
}

func NewServer(addr string, registry *command.Registry, store *storage.Storage) *Server {
	return &Server{
		addr:      addr,
		registry:  registry,
		store:     store,
		startedAt: time.Now(),
	}
}

// Run blocks until the server exits or ctx is cancelled; run it in a
// goroutine or under a job manager.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{Addr: s.addr, Handler: s.routes()}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down status server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[INFO] Status server listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.String(),
			"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
		})
	})

	r.GET("/stats", func(c *gin.Context) {
		total, err := s.store.TotalChainsProcessed()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"commands":         len(s.registry.All()),
			"chains_processed": total,
			"started":          util.FormatDateTpl(s.startedAt.UnixMilli(), "YYYY-MM-DD hh:mm:ss"),
		})
	})

	return r
}

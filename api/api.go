package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/3lvia/problemdetails"
	"github.com/3lvia/problemdetails/internal/runtime"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sloggin "github.com/samber/slog-gin"
)

// Routes registers application routes on the router.
type Routes func(r gin.IRouter)

// Server runs an http.Server in the background.
type Server struct {
	srv  *http.Server
	errs chan error
}

// Serve starts serving handler on addr.
func Serve(addr string, handler http.Handler) *Server {
	s := &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		errs: make(chan error, 1),
	}

	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.errs <- err
		close(s.errs)
	}()

	slog.Info("API server is listening", "addr", addr)

	return s
}

// Done receives the error the server stopped with, nil after a shutdown.
func (s *Server) Done() <-chan error {
	return s.errs
}

// Shutdown stops the server gracefully, closing it when ctx expires first.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.InfoContext(ctx, "API server is shutting down")

	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.Join(err, s.srv.Close())
	}

	slog.InfoContext(ctx, "API server has shut down")
	return nil
}

func NewHandler(env runtime.Env, routes ...Routes) http.Handler {
	switch env {
	case runtime.Development:
		gin.SetMode(gin.DebugMode)
	case runtime.Test:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(sloggin.NewWithConfig(slog.Default(), sloggin.Config{
		WithSpanID:  true,
		WithTraceID: true,
		Filters: []sloggin.Filter{
			sloggin.IgnorePath("/metrics"),
			sloggin.IgnorePath("/health"),
		},
	}))
	router.Use(gin.Recovery())
	router.Use(Problems())

	router.NoRoute(func(c *gin.Context) {
		Abort(c, problemdetails.NewError(problemdetails.MustNew(
			nil,
			requestInstance(c),
			"Not Found",
			fmt.Sprintf("path %s not found", c.Request.URL.Path),
			http.StatusNotFound)))
	})

	router.NoMethod(func(c *gin.Context) {
		Abort(c, problemdetails.NewError(problemdetails.MustNew(
			nil,
			requestInstance(c),
			"Method Not Allowed",
			fmt.Sprintf("method %s not allowed", c.Request.Method),
			http.StatusMethodNotAllowed)))
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/favicon.ico", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	for _, r := range routes {
		r(router)
	}

	return router
}

func requestInstance(c *gin.Context) *url.URL {
	return &url.URL{Path: c.Request.URL.Path}
}

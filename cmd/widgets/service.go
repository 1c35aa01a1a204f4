package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/3lvia/problemdetails/api"
	"github.com/3lvia/problemdetails/config"
	"github.com/3lvia/problemdetails/internal/observability"
	"github.com/3lvia/problemdetails/internal/runtime"
	"github.com/3lvia/problemdetails/internal/tracemsg"
	"github.com/3lvia/problemdetails/internal/widgets"
	"github.com/3lvia/problemdetails/natsproblem"
	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "widgets"

	// GetSubject is the subject for looking up a widget by id over NATS.
	GetSubject = "widgets.get"
)

type WidgetService struct {
	cfg      *config.Config
	nc       *nats.Conn
	catalog  *widgets.Catalog
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

func NewWidgetService(ctx context.Context, cfg *config.Config) (*WidgetService, error) {
	shutdown, err := observability.Configure(ctx, serviceName, cfg.Env)
	if err != nil {
		return nil, err
	}

	runtime.NewLogger(observability.ServiceName(serviceName), cfg.Env)

	secrets, err := config.LoadSecrets(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load secrets", "error", err)
		return nil, errors.Join(err, shutdown(ctx))
	}

	slog.InfoContext(ctx, "connecting to nats server", "nats_addr", cfg.NatsAddr)

	opts := append(secrets.NatsOptions(),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			slog.ErrorContext(ctx, "disconnected from nats server", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.InfoContext(ctx, "reconnected to nats server")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			slog.InfoContext(ctx, "connection to nats server closed")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			slog.ErrorContext(ctx, "nats error", "error", err)
		}),
	)

	nc, err := nats.Connect(cfg.NatsAddr, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to nats server", "error", err)
		return nil, errors.Join(err, shutdown(ctx))
	}

	slog.InfoContext(ctx, "connected to nats server")

	return &WidgetService{
		cfg: cfg,
		nc:  nc,
		catalog: widgets.NewCatalog(
			widgets.Widget{ID: 1, Name: "sprocket"},
			widgets.Widget{ID: 2, Name: "gear"},
		),
		tracer:   otel.Tracer(observability.TracerName),
		shutdown: shutdown,
	}, nil
}

// Run serves HTTP and NATS requests until ctx is done or the HTTP server fails.
func (s *WidgetService) Run(ctx context.Context) error {
	sub, err := s.nc.Subscribe(GetSubject, s.handleGet)
	if err != nil {
		return err
	}
	defer func() {
		_ = sub.Unsubscribe()
	}()

	srv := api.Serve(s.cfg.ApiAddr, api.NewHandler(s.cfg.Env, widgetRoutes(s.catalog, s.cfg.InstanceBase)))

	select {
	case <-ctx.Done():
	case err := <-srv.Done():
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *WidgetService) Stop(ctx context.Context) error {
	s.nc.Close()
	return s.shutdown(ctx)
}

func (s *WidgetService) handleGet(msg *nats.Msg) {
	ctx := tracemsg.Extract(context.Background(), msg.Header)
	ctx, span := s.tracer.Start(ctx, GetSubject)
	defer span.End()

	var data []byte
	w, err := s.catalog.Lookup(ctx, widgets.NewInstance(s.cfg.InstanceBase), string(msg.Data))
	if err == nil {
		data, err = json.Marshal(w)
	}

	if err = natsproblem.Respond(ctx, msg, data, err); err != nil {
		slog.ErrorContext(ctx, "failed to respond to widget request", "error", err)
	}
}

func widgetRoutes(catalog *widgets.Catalog, instanceBase string) api.Routes {
	return func(r gin.IRouter) {
		r.GET("/widgets/:id", func(c *gin.Context) {
			w, err := catalog.Lookup(c.Request.Context(), widgets.NewInstance(instanceBase), c.Param("id"))
			if err != nil {
				api.Abort(c, err)
				return
			}

			c.JSON(http.StatusOK, w)
		})
	}
}

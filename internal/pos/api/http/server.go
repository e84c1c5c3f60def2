package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"smart-pos/internal/pos/adapter/broker"
	database "smart-pos/internal/pos/adapter/db"
	"smart-pos/internal/pos/api/http/handle"
	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/app/services"
	"smart-pos/internal/xpkg/config"
	xdb "smart-pos/internal/xpkg/db"
	"smart-pos/internal/xpkg/logger"
)

var ErrServerClosed = errors.New("server closed")

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  logger.Logger
	pool   *pgxpool.Pool
	mb     *broker.RabbitMQ
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
}

func NewServer(ctx, appCtx context.Context, cfg *config.Config, mylog logger.Logger) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run connects the database and the broker, registers routes and serves
// until the context is canceled or the listener fails.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	pool, err := xdb.Start(s.appCtx, s.cfg.DB)
	if err != nil {
		mylog.Action("db_connection_failed").Error("Failed to connect to database", err)
		return err
	}
	s.pool = pool
	mylog.Action("db_connected").Info("Successful database connection")

	mb, err := broker.Connect(s.cfg.RMQ, s.mylog)
	if err != nil {
		mylog.Action("mb_connection_failed").Error("Failed to connect to message broker", err)
		return err
	}
	s.mb = mb

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.HTTP.Port),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog.Info("server is running", "port", s.cfg.HTTP.Port)
	return s.startHTTPServer()
}

// Stop shuts everything down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, core.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.pool != nil {
		s.pool.Close()
		s.mylog.Action("db_closed").Info("Database closed")
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Action("mb_close_failed").Error("Failed to close message broker", err)
			return fmt.Errorf("mb close: %w", err)
		}
		s.mylog.Action("mb_closed").Info("Message broker closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	g, ctx := errgroup.WithContext(s.ctx)

	g.Go(func() error {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Unblocks Wait on shutdown signal; the listener itself is closed by
		// Stop.
		<-ctx.Done()
		return nil
	})

	return g.Wait()
}

// Configure wires stores, services and routes.
func (s *Server) Configure() {
	store := database.NewStore(s.pool, s.mylog)

	orderService := services.NewOrderService(store, s.mb, s.mylog)
	inkassaService := services.NewInkassaService(store, s.mylog)

	orderHandler := handle.NewOrderHandler(orderService, s.mylog)
	inkassaHandler := handle.NewInkassaHandler(inkassaService, s.mylog)

	s.mux.Handle("POST /orders", orderHandler.Create())
	s.mux.Handle("GET /orders/{id}", orderHandler.Get())
	s.mux.Handle("POST /orders/{id}/items", orderHandler.AddItem())
	s.mux.Handle("PATCH /orders/{id}/items/{itemID}", orderHandler.UpdateItem())
	s.mux.Handle("DELETE /orders/{id}/items/{itemID}", orderHandler.RemoveItem())
	s.mux.Handle("POST /orders/{id}/items/{itemID}/ready", orderHandler.MarkItemReady())
	s.mux.Handle("POST /orders/{id}/items/{itemID}/unready", orderHandler.UnmarkItemReady())
	s.mux.Handle("PATCH /orders/{id}/status", orderHandler.UpdateStatus())
	s.mux.Handle("POST /orders/{id}/ready", orderHandler.MarkReady())
	s.mux.Handle("POST /orders/{id}/pay", orderHandler.Pay())
	s.mux.Handle("GET /display/client", orderHandler.ClientDisplay())

	s.mux.Handle("GET /register/balance", inkassaHandler.Balance())
	s.mux.Handle("GET /register/period-stats", inkassaHandler.PeriodStats())
	s.mux.Handle("POST /register/inkassa", inkassaHandler.Perform())
	s.mux.Handle("GET /register/inkassa", inkassaHandler.History())
	s.mux.Handle("GET /register/inkassa/{id}", inkassaHandler.Get())
}

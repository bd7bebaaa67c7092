// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/handler"
	"fintrack/src/app/http/response"
	"fintrack/src/app/middleware"
	"fintrack/src/core/ports"
	"fintrack/src/core/usecase"
	"fintrack/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler      *handler.HealthHandler
	userHandler        *handler.UserHandler
	categoryHandler    *handler.CategoryHandler
	accountHandler     *handler.AccountHandler
	transactionHandler *handler.TransactionHandler
	budgetHandler      *handler.BudgetHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.FinanceRepository) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		log:    log,
		router: gin.New(),

		healthHandler:      handler.NewHealthHandler(usecase.NewHealthService(repo, log)),
		userHandler:        handler.NewUserHandler(usecase.NewUserService(repo, log)),
		categoryHandler:    handler.NewCategoryHandler(usecase.NewCategoryService(repo)),
		accountHandler:     handler.NewAccountHandler(usecase.NewAccountService(repo, log)),
		transactionHandler: handler.NewTransactionHandler(usecase.NewTransactionService(repo, log)),
		budgetHandler:      handler.NewBudgetHandler(usecase.NewBudgetService(repo, log)),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so it sees panics from everything below it.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.DatabaseErrors())
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	staticDir := s.cfg.Server.StaticDir
	s.router.StaticFile("/", filepath.Join(staticDir, "index.html"))
	s.router.Static("/static", staticDir)

	// Users
	s.router.POST("/users", s.userHandler.Create)
	s.router.POST("/login", s.userHandler.Login)

	// Categories
	s.router.GET("/categories", s.categoryHandler.List)

	// Accounts
	s.router.GET("/accounts/:user_id", s.accountHandler.List)
	s.router.POST("/accounts", s.accountHandler.Create)
	s.router.PUT("/accounts/:account_id", s.accountHandler.Update)
	s.router.DELETE("/accounts/:account_id", s.accountHandler.Delete)

	// Transactions
	s.router.GET("/transactions/:user_id", s.transactionHandler.List)
	s.router.POST("/transactions", s.transactionHandler.Create)
	s.router.DELETE("/transactions/:transaction_id", s.transactionHandler.Delete)

	// Budgets
	s.router.GET("/budgets/:user_id", s.budgetHandler.List)
	s.router.POST("/budgets", s.budgetHandler.Create)
	s.router.PUT("/budgets/:budget_id", s.budgetHandler.Update)
	s.router.DELETE("/budgets/:budget_id", s.budgetHandler.Delete)

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

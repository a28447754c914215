// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/balance-ledger/internal/ledgerdelivery"
	"github.com/go-petr/balance-ledger/internal/ledgerrepo"
	"github.com/go-petr/balance-ledger/internal/ledgerservice"
	"github.com/go-petr/balance-ledger/internal/middleware"
	"github.com/go-petr/balance-ledger/internal/sessiondelivery"
	"github.com/go-petr/balance-ledger/internal/sessionservice"
	"github.com/go-petr/balance-ledger/pkg/configpkg"
	"github.com/go-petr/balance-ledger/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB         *sql.DB
	Engine     *gin.Engine
	Config     configpkg.Config
	TokenMaker tokenpkg.Maker
	Registry   *prometheus.Registry
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.New(config.TokenMaker, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("address", ledgerdelivery.ValidAddress); err != nil {
			return nil, fmt.Errorf("cannot register address validator: %w", err)
		}

		if err := v.RegisterValidation("int128", ledgerdelivery.ValidInt128); err != nil {
			return nil, fmt.Errorf("cannot register int128 validator: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(conn, "ledger"),
	)

	metrics := middleware.NewMetrics(registry)

	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	ledgerService := ledgerservice.New(ledgerRepo, middleware.TokenWitness{})
	sessionService := sessionservice.New(tokenMaker, config)

	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(metrics.Handler())

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	engine.POST("/initialize", ledgerHandler.Initialize)
	engine.GET("/authority", ledgerHandler.GetAuthority)
	engine.POST("/sessions", sessionHandler.Create)

	engine.GET("/balances/:user", ledgerHandler.GetBalance)
	engine.GET("/balances/:user/withdrawable", ledgerHandler.GetWithdrawable)
	engine.GET("/balances/:user/locked", ledgerHandler.GetLocked)
	engine.GET("/balances/:user/total", ledgerHandler.GetTotal)
	engine.GET("/balances/:user/events", ledgerHandler.ListEvents)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.PUT("/balances/:user", ledgerHandler.SetBalance)
	authRoutes.POST("/balances/:user/delta", ledgerHandler.ApplyDelta)
	authRoutes.POST("/balances/:user/lock", ledgerHandler.LockFunds)
	authRoutes.POST("/balances/:user/unlock", ledgerHandler.UnlockFunds)

	server := &Server{
		DB:         conn,
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
		Registry:   registry,
	}

	return server, nil
}

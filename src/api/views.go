package api

import (
	"net/http"
	"time"

	handlers "investing/src/api/handlers"
	"investing/src/clients/marketdata"
	"investing/src/config"
	"investing/src/repositories"
	"investing/src/services"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

// NewServer wires repositories, services and handlers around an already
// opened pool. The pool's lifecycle belongs to the caller.
func NewServer(cfg *config.Config, db *pgxpool.Pool) *Server {
	accountRepo := repositories.NewAccountRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	etfRepo := repositories.NewETFRepository(db)
	txManager := repositories.NewTxManager(db)

	marketClient := marketdata.NewClient(cfg)
	ledger := services.NewLedgerService(txManager, accountRepo, holdingRepo, transactionRepo)
	allocation := services.NewAllocationService(cfg.Allocation)
	recommendations := services.NewRecommendationService(allocation, marketClient, etfRepo)

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handlers.NewHandler(ledger, recommendations, marketClient, etfRepo),
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Get("/api/market/price/{ticker}", s.Handler.GetPrice)
	s.Router.Get("/api/market/etfs", s.Handler.GetETFUniverse)
	s.Router.Post("/api/portfolio/recommend", s.Handler.RecommendPortfolio)

	s.Router.Route("/api/accounts", func(r chi.Router) {
		r.Post("/", s.Handler.CreateAccount)
		r.Get("/{id}", s.Handler.GetAccount)
		r.Delete("/{id}", s.Handler.DeleteAccount)
		r.Put("/{id}/balance", s.Handler.UpdateBalance)
		r.Get("/{id}/holdings", s.Handler.GetHoldings)
		r.Get("/{id}/transactions", s.Handler.GetTransactions)
		r.Post("/{id}/trades", s.Handler.ExecuteTrade)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}

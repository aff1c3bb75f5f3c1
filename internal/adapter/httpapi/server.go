package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// Server exposes the statement engine over a JSON API. Reports are computed
// on demand from a freshly loaded company snapshot; the server holds no
// statement state between requests.
type Server struct {
	snapshots domain.SnapshotRepository
	router    chi.Router
	logger    zerolog.Logger
}

// New creates the API server. token guards every /api route; an empty token
// disables auth (local development).
func New(snapshots domain.SnapshotRepository, token string, logger zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{snapshots: snapshots, router: r, logger: logger}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requestLogger(logger))
		r.Use(bearerAuth(token))

		r.Get("/companies/{companyID}/reports/pnl", s.profitAndLoss)
		r.Get("/companies/{companyID}/reports/balance-sheet", s.balanceSheet)
		r.Get("/companies/{companyID}/reports/cash-flow", s.cashFlow)
		r.Get("/companies/{companyID}/reports/budget-variance", s.budgetVariance)
		r.Get("/companies/{companyID}/reports/depreciation", s.depreciationReport)
		r.Get("/companies/{companyID}/accounts", s.listAccounts)
	})

	return s
}

// Handler returns the root handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/financeflow/backend/internal/handlers"
	"github.com/financeflow/backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	ih := handlers.NewImportHandlers(deps)
	mh := handlers.NewMappingHandlers(deps)

	r.Mount("/imports", ih.ImportRoutes())
	r.Mount("/transactions", ih.TransactionRoutes())
	r.Mount("/import-mappings", mh.MappingRoutes())
	return r
}

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/financeflow/backend/internal/bootstrap"
	"github.com/financeflow/backend/internal/config"
	"github.com/financeflow/backend/internal/handlers"
	"github.com/financeflow/backend/internal/response"
	"github.com/financeflow/backend/internal/router"
	"github.com/financeflow/backend/internal/services"
	"github.com/financeflow/backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	mstore := store.NewMappingStore(bs.Firestore)
	astore := store.NewAccountStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)

	// services
	mserv := services.NewMappingService(mstore)
	iserv := services.NewImportService(astore, tstore, mserv)
	tserv := services.NewTemplateService()

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.MappingSvc = mserv
	deps.ImportSvc = iserv
	deps.TemplateSvc = tserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}

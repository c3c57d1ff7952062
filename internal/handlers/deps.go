package handlers

import (
	"log/slog"

	"github.com/financeflow/backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ImportSvc       ImportService
	MappingSvc      MappingService
	TemplateSvc     TemplateService
}

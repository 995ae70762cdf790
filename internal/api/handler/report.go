package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
	"github.com/vfg2006/meta-report-pipeline/internal/scheduler"
	"github.com/vfg2006/meta-report-pipeline/pkg/apiErrors"
	"github.com/vfg2006/meta-report-pipeline/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LastRunner expõe o resumo da última execução do pipeline
type LastRunner interface {
	LastRun() *domain.RunSummary
}

// ReportServices contém os serviços necessários para as rotas de relatório
type ReportServices struct {
	SyncService *scheduler.ReportSyncService
	Pipeline    LastRunner
}

// RunReport dispara manualmente uma execução do pipeline de relatórios
func RunReport(services ReportServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("report: disparo manual do pipeline solicitado")

		if services.SyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de execução de relatórios não disponível", nil)
			return
		}

		services.SyncService.TriggerManualSync(r.Context())

		response := map[string]any{
			"message": "Execução do pipeline de relatórios iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao serializar resposta de execução de relatório")
		}
	})
}

// GetReportStatus retorna o status do agendador e o resumo da última execução
func GetReportStatus(services ReportServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("report: consulta de status do pipeline")

		status := map[string]any{}

		if services.SyncService != nil {
			status["scheduler"] = services.SyncService.GetStatus()
		}

		if services.Pipeline != nil {
			status["last_run"] = services.Pipeline.LastRun()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("Erro ao serializar status do pipeline")
		}
	})
}

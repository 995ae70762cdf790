package extracting

import (
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
)

// ReportRunner é o subconjunto do cliente Meta que a extração usa: criar o
// report run assíncrono, consultar o status e buscar os resultados
type ReportRunner interface {
	CreateReportRun(accountID string) (*metadomain.ReportRun, error)
	GetReportRunStatus(reportRunID string) (*metadomain.ReportRunStatus, error)
	GetReportRunResults(reportRunID string) (*metadomain.ResultSet, error)
}

package reporting

import (
	"context"

	"github.com/vfg2006/meta-report-pipeline/internal/domain"
)

// Extractor executa a extração assíncrona multi-conta e devolve a tabela
// consolidada com os jobs em status terminal
type Extractor interface {
	Extract(ctx context.Context, clients map[string]string) (*domain.Table, []*domain.ReportJob, error)
}

// Enricher deriva métricas de negócio e projeta o relatório final
type Enricher interface {
	Enrich(table *domain.Table) []*domain.EnrichedRow
	Project(table *domain.Table, rows []*domain.EnrichedRow) *domain.Report
}

// ReportWriter serializa o relatório final (arquivo, planilha)
type ReportWriter interface {
	Write(report *domain.Report) error
}

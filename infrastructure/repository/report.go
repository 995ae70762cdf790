package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
)

const (
	reportRowsTable = "report_rows"
	reportRunsTable = "report_runs"
)

// ReportRepository guarda o histórico de execuções e as linhas enriquecidas
type ReportRepository interface {
	SaveRows(runID string, rows []*domain.EnrichedRow) error
	SaveRunSummary(summary *domain.RunSummary) error
	GetLastRunSummary() (*domain.RunSummary, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) SaveRows(runID string, rows []*domain.EnrichedRow) error {
	if len(rows) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(reportRowsTable).
		Columns(
			"run_id", "cliente", "data", "dia_semana",
			"campanha", "campanha_id", "conjunto_anuncios", "conjunto_anuncios_id",
			"gasto", "impressoes", "alcance", "ctr", "cpc",
			"custo_por_visita", "custo_por_mensagem",
			"compras", "receita_compras", "roas", "cpa", "resultado_lucro",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(
			runID, row.Cliente, row.Data.Format(time.DateOnly), row.DiaSemana,
			row.Campanha, row.CampanhaID, row.Conjunto, row.ConjuntoID,
			row.Gasto, row.Impressoes, row.Alcance, row.CTR, row.CPC,
			row.CustoPorVisita, row.CustoPorMensagem,
			row.Compras, row.ReceitaCompras, row.ROAS, row.CPA, row.ResultadoLucro,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar linhas do relatório: %w", err)
	}

	return nil
}

func (r *reportRepository) SaveRunSummary(summary *domain.RunSummary) error {
	query, args, err := squirrel.
		Insert(reportRunsTable).
		Columns(
			"run_id", "started_at", "finished_at",
			"jobs_submitted", "jobs_completed", "jobs_failed", "jobs_skipped",
			"rows_count", "output_path",
		).
		Values(
			summary.RunID, summary.StartedAt, summary.FinishedAt,
			summary.JobsSubmitted, summary.JobsCompleted, summary.JobsFailed, summary.JobsSkipped,
			summary.Rows, summary.OutputPath,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar resumo da execução: %w", err)
	}

	return nil
}

func (r *reportRepository) GetLastRunSummary() (*domain.RunSummary, error) {
	query, args, err := squirrel.
		Select(
			"run_id", "started_at", "finished_at",
			"jobs_submitted", "jobs_completed", "jobs_failed", "jobs_skipped",
			"rows_count", "output_path",
		).
		From(reportRunsTable).
		OrderBy("finished_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.RunSummary{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&summary.RunID, &summary.StartedAt, &summary.FinishedAt,
		&summary.JobsSubmitted, &summary.JobsCompleted, &summary.JobsFailed, &summary.JobsSkipped,
		&summary.Rows, &summary.OutputPath,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo da execução: %w", err)
	}

	return summary, nil
}

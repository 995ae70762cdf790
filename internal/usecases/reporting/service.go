package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/meta-report-pipeline/internal/config"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
	"github.com/vfg2006/meta-report-pipeline/internal/metrics"
	"github.com/vfg2006/meta-report-pipeline/pkg/utils"
)

// Service orquestra uma execução completa do pipeline: extração assíncrona,
// derivação de métricas, projeção e entrega aos colaboradores de persistência
type Service struct {
	cfg        *config.Config
	extractor  Extractor
	enricher   Enricher
	writer     ReportWriter
	reportRepo repository.ReportRepository
	metrics    *metrics.Metrics

	mu      sync.Mutex
	lastRun *domain.RunSummary
}

func NewService(
	cfg *config.Config,
	extractor Extractor,
	enricher Enricher,
	writer ReportWriter,
) *Service {
	return &Service{
		cfg:       cfg,
		extractor: extractor,
		enricher:  enricher,
		writer:    writer,
	}
}

// WithHistory habilita o histórico de execuções no banco e recupera o
// resumo da última execução persistida, para que o status sobreviva a
// reinícios do processo
func (s *Service) WithHistory(repo repository.ReportRepository) *Service {
	s.reportRepo = repo

	last, err := repo.GetLastRunSummary()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao recuperar o resumo da última execução do banco")
		return s
	}

	s.mu.Lock()
	s.lastRun = last
	s.mu.Unlock()

	return s
}

// WithMetrics habilita as métricas Prometheus do pipeline
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Run executa o pipeline de ponta a ponta. Erros por conta ou por job são
// contidos durante a extração; somente configuração ausente aborta a
// execução. O resultado é sempre o melhor esforço com as contas que
// funcionaram.
func (s *Service) Run(ctx context.Context) error {
	if len(s.cfg.Clients) == 0 {
		logrus.Error("A configuração CLIENT_ACCOUNT_MAP está vazia. Abortando o pipeline antes de qualquer submissão.")
		return errors.New("nenhum cliente configurado para extração")
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar identificador da execução")
	}

	startedAt := time.Now()
	logger := logrus.WithField("run_id", runID)
	logger.WithField("clients", len(s.cfg.Clients)).Info("Iniciando execução do pipeline de relatórios")

	table, jobs, err := s.extractor.Extract(ctx, s.cfg.Clients)
	if err != nil {
		return errors.Wrap(err, "erro na extração de insights")
	}

	summary := s.summarize(runID, startedAt, jobs, table)

	if table.IsEmpty() {
		logger.Warn("Nenhum dado foi extraído de nenhuma conta. Nada para processar ou salvar.")
		s.finish(summary, logger)
		return nil
	}

	enriched := s.enricher.Enrich(table)
	report := s.enricher.Project(table, enriched)
	summary.Rows = len(report.Rows)
	summary.OutputPath = s.cfg.Report.OutputPath

	if err := s.writer.Write(report); err != nil {
		return errors.Wrap(err, "erro ao gravar o relatório final")
	}

	if s.reportRepo != nil {
		if err := s.reportRepo.SaveRows(runID, enriched); err != nil {
			logger.WithError(err).Error("Erro ao salvar linhas do relatório no banco")
		}
	}

	s.finish(summary, logger)
	return nil
}

// LastRun devolve o resumo da última execução concluída, se houver
func (s *Service) LastRun() *domain.RunSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

func (s *Service) summarize(runID string, startedAt time.Time, jobs []*domain.ReportJob, table *domain.Table) *domain.RunSummary {
	summary := &domain.RunSummary{
		RunID:         runID,
		StartedAt:     startedAt,
		JobsSubmitted: len(jobs),
	}

	for _, job := range jobs {
		switch job.Status {
		case domain.JobStatusCompleted:
			summary.JobsCompleted++
		case domain.JobStatusFailed:
			summary.JobsFailed++
		case domain.JobStatusSkipped:
			summary.JobsSkipped++
		}
	}

	if table != nil {
		summary.Rows = table.Len()
	}

	return summary
}

func (s *Service) finish(summary *domain.RunSummary, logger *logrus.Entry) {
	summary.FinishedAt = time.Now()

	if s.reportRepo != nil {
		if err := s.reportRepo.SaveRunSummary(summary); err != nil {
			logger.WithError(err).Error("Erro ao salvar resumo da execução no banco")
		}
	}

	s.metrics.RunFinished(summary.FinishedAt.Sub(summary.StartedAt), summary.Rows)

	s.mu.Lock()
	s.lastRun = summary
	s.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"duration":       summary.FinishedAt.Sub(summary.StartedAt).String(),
		"jobs_submitted": summary.JobsSubmitted,
		"jobs_completed": summary.JobsCompleted,
		"jobs_failed":    summary.JobsFailed,
		"jobs_skipped":   summary.JobsSkipped,
		"rows":           summary.Rows,
	}).Info("Pipeline concluído")
}

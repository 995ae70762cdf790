package extracting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
	"github.com/vfg2006/meta-report-pipeline/internal/metrics"
)

// Service orquestra a extração assíncrona: um report job por conta de
// cliente, polling em rodadas de intervalo fixo até o conjunto ativo drenar
// e consolidação das linhas na ordem de conclusão dos jobs
type Service struct {
	client       ReportRunner
	pollInterval time.Duration
	metrics      *metrics.Metrics

	// sleep é substituível em testes para rodar sem espera de relógio real
	sleep func(time.Duration)
}

func NewService(client ReportRunner, pollInterval time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		client:       client,
		pollInterval: pollInterval,
		metrics:      m,
		sleep:        time.Sleep,
	}
}

// Extract executa o fluxo completo para o mapa cliente → conta e devolve a
// tabela consolidada junto com todos os jobs submetidos, já em status
// terminal. Falhas por conta são contidas: apenas um mapa vazio é erro.
func (s *Service) Extract(ctx context.Context, clients map[string]string) (*domain.Table, []*domain.ReportJob, error) {
	if len(clients) == 0 {
		return nil, nil, errors.New("o mapa de clientes e contas está vazio")
	}

	jobs := s.SubmitJobs(clients)
	table := s.PollUntilDone(ctx, jobs)

	return table, jobs, nil
}

// SubmitJobs cria um report run assíncrono por entrada do mapa. A falha de
// submissão de uma conta nunca aborta o lote: a conta é registrada e pulada.
func (s *Service) SubmitJobs(clients map[string]string) []*domain.ReportJob {
	logrus.WithField("accounts", len(clients)).Info("Iniciando jobs de extração assíncrona no nível de conjunto de anúncios")

	jobs := make([]*domain.ReportJob, 0, len(clients))

	for clientName, accountID := range clients {
		run, err := s.client.CreateReportRun(accountID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client":     clientName,
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Erro ao iniciar report job para o cliente")
			s.metrics.SubmissionFailed()
			continue
		}

		jobs = append(jobs, &domain.ReportJob{
			Target: domain.AccountTarget{
				ClientName: clientName,
				AccountID:  accountID,
			},
			ReportRunID: run.ReportRunID,
			Status:      domain.JobStatusPending,
		})
		s.metrics.JobSubmitted()

		logrus.WithFields(logrus.Fields{
			"client":        clientName,
			"account_id":    accountID,
			"report_run_id": run.ReportRunID,
		}).Info("Report job iniciado para o cliente")
	}

	return jobs
}

// PollUntilDone re-verifica todos os jobs ainda pendentes em rodadas de
// intervalo fixo até cada um atingir status terminal. Não existe timeout
// global: um job que o lado remoto nunca resolve mantém o polling indefinido.
func (s *Service) PollUntilDone(ctx context.Context, jobs []*domain.ReportJob) *domain.Table {
	table := domain.NewTable()

	active := make([]*domain.ReportJob, 0, len(jobs))
	for _, job := range jobs {
		if job.Status == domain.JobStatusPending {
			active = append(active, job)
		}
	}

	for len(active) > 0 {
		if err := s.wait(ctx); err != nil {
			logrus.WithField("pending_jobs", len(active)).Warn("Polling interrompido pelo contexto; jobs pendentes abandonados")
			return table
		}

		active = s.pollRound(active, table)
	}

	return table
}

// pollRound é uma rodada imutável: recebe o conjunto ativo e devolve os
// sobreviventes, anexando à tabela as linhas dos jobs concluídos na rodada
func (s *Service) pollRound(active []*domain.ReportJob, table *domain.Table) []*domain.ReportJob {
	s.metrics.PollRound()

	remaining := make([]*domain.ReportJob, 0, len(active))

	for _, job := range active {
		status, err := s.client.GetReportRunStatus(job.ReportRunID)
		if err != nil {
			if s.handlePollError(job, err) {
				remaining = append(remaining, job)
			}
			continue
		}

		switch status.AsyncStatus {
		case metadomain.RunStatusCompleted:
			if !s.collectResults(job, table) {
				remaining = append(remaining, job)
			}

		case metadomain.RunStatusFailed:
			job.Status = domain.JobStatusFailed
			job.LastError = status.AsyncStatus
			s.metrics.JobTerminated("failed")
			logrus.WithFields(logrus.Fields{
				"client":             job.Target.ClientName,
				"report_run_id":      job.ReportRunID,
				"percent_completion": status.AsyncPercentCompletion,
			}).Error("Report job falhou no lado remoto")

		case metadomain.RunStatusSkipped:
			job.Status = domain.JobStatusSkipped
			job.LastError = status.AsyncStatus
			s.metrics.JobTerminated("skipped")
			logrus.WithFields(logrus.Fields{
				"client":             job.Target.ClientName,
				"report_run_id":      job.ReportRunID,
				"percent_completion": status.AsyncPercentCompletion,
			}).Error("Report job foi pulado no lado remoto")

		default:
			// Ainda em execução: permanece no conjunto ativo
			remaining = append(remaining, job)
		}
	}

	return remaining
}

// collectResults busca e consolida as linhas de um job concluído. Retorna
// false quando o job deve permanecer no conjunto ativo (erro transitório na
// busca de resultados).
func (s *Service) collectResults(job *domain.ReportJob, table *domain.Table) bool {
	results, err := s.client.GetReportRunResults(job.ReportRunID)
	if err != nil {
		return !s.handlePollError(job, err)
	}

	job.Status = domain.JobStatusCompleted
	s.metrics.JobCompleted()

	if len(results.Rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"client":        job.Target.ClientName,
			"report_run_id": job.ReportRunID,
		}).Warn("Report job concluído, mas sem dados")
		return true
	}

	table.Append(job.Target.ClientName, convertRows(results.Rows), results.Columns)
	s.metrics.RowsAdded(len(results.Rows))

	logrus.WithFields(logrus.Fields{
		"client":        job.Target.ClientName,
		"report_run_id": job.ReportRunID,
		"rows":          len(results.Rows),
	}).Info("Report job concluído e consolidado")

	return true
}

// handlePollError classifica o erro de consulta entre transitório e
// permanente. Retorna true quando o job deve continuar no conjunto ativo.
func (s *Service) handlePollError(job *domain.ReportJob, err error) bool {
	var reqErr *metadomain.RequestError
	if errors.As(err, &reqErr) && reqErr.Transient {
		logrus.WithFields(logrus.Fields{
			"client":        job.Target.ClientName,
			"report_run_id": job.ReportRunID,
			"error":         err.Error(),
		}).Warn("Erro transitório ao verificar report job; nova tentativa na próxima rodada")
		return true
	}

	// Erro permanente: o job é descartado e não contribui linhas
	job.Status = domain.JobStatusFailed
	job.LastError = err.Error()
	s.metrics.JobTerminated("discarded")
	logrus.WithFields(logrus.Fields{
		"client":        job.Target.ClientName,
		"report_run_id": job.ReportRunID,
		"error":         err.Error(),
	}).Error("Erro permanente ao verificar report job; job descartado")

	return false
}

// wait dorme o intervalo fixo entre rodadas, respeitando o contexto
func (s *Service) wait(ctx context.Context) error {
	if ctx == nil {
		s.sleep(s.pollInterval)
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.sleep(s.pollInterval)
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// convertRows marca o formato de transporte para o domínio interno
func convertRows(rows []*metadomain.InsightRow) []*domain.InsightRow {
	converted := make([]*domain.InsightRow, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, &domain.InsightRow{
			DateStart:         row.DateStart,
			CampaignName:      row.CampaignName,
			CampaignID:        row.CampaignID,
			AdsetName:         row.AdsetName,
			AdsetID:           row.AdsetID,
			Spend:             row.Spend,
			Reach:             row.Reach,
			Impressions:       row.Impressions,
			CTR:               row.CTR,
			CPC:               row.CPC,
			CostPerActionType: convertActionValues(row.CostPerActionType),
			Actions:           convertActionValues(row.Actions),
			ActionValues:      convertActionValues(row.ActionValues),
		})
	}
	return converted
}

func convertActionValues(values []metadomain.ActionValue) []domain.ActionValue {
	if values == nil {
		return nil
	}

	converted := make([]domain.ActionValue, 0, len(values))
	for _, v := range values {
		converted = append(converted, domain.ActionValue{
			ActionType: v.ActionType,
			Value:      v.Value,
		})
	}
	return converted
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-report-pipeline/internal/config"
)

// Runner executa uma passada completa do pipeline de relatórios
type Runner interface {
	Run(ctx context.Context) error
}

// ReportSyncService gerencia o agendamento das execuções recorrentes do
// pipeline de relatórios
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.ReportSync
	pipeline            Runner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do agendador de relatórios
func NewReportSyncService(pipeline Runner, appConfig *config.Config) *ReportSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ReportSync.CronSchedule,
		"sync_enabled":  appConfig.ReportSync.Enabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:   scheduler,
		config:      appConfig.ReportSync,
		pipeline:    pipeline,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Execução recorrente do pipeline de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do pipeline de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// runPipeline executa uma passada do pipeline, ignorando se já houver uma em andamento
func (s *ReportSyncService) runPipeline(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando execução agendada do pipeline de relatórios")

	if err := s.pipeline.Run(ctx); err != nil {
		logrus.WithError(err).Error("Erro na execução agendada do pipeline de relatórios")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).
		Info("Execução agendada do pipeline de relatórios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma execução do pipeline
func (s *ReportSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline de relatórios")
	go s.runPipeline(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

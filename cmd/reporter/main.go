package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/export"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/meta-report-pipeline/internal/api"
	"github.com/vfg2006/meta-report-pipeline/internal/config"
	"github.com/vfg2006/meta-report-pipeline/internal/metrics"
	"github.com/vfg2006/meta-report-pipeline/internal/scheduler"
	"github.com/vfg2006/meta-report-pipeline/internal/usecases/enriching"
	"github.com/vfg2006/meta-report-pipeline/internal/usecases/extracting"
	"github.com/vfg2006/meta-report-pipeline/internal/usecases/reporting"
)

func main() {
	runOnce := flag.Bool("once", false, "executa o pipeline uma única vez e encerra")
	flag.Parse()

	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.Init("meta_report")

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)

	pollInterval := time.Duration(cfg.Report.PollIntervalSeconds) * time.Second
	extractor := extracting.NewService(metaClient, pollInterval, metrics.DefaultMetrics)
	enricher := enriching.NewService()
	writer := export.NewCSVWriter(cfg.Report.OutputPath)

	pipeline := reporting.NewService(cfg, extractor, enricher, writer).
		WithMetrics(metrics.DefaultMetrics)

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		reportRepo := repository.NewReportRepository(pgConn)
		pipeline = pipeline.WithHistory(reportRepo)
	} else {
		logrus.Info("Banco de dados desabilitado, histórico de execuções não será salvo")
	}

	if *runOnce {
		if err := pipeline.Run(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro na execução do pipeline de relatórios")
		}
		return
	}

	reportSyncService := scheduler.NewReportSyncService(pipeline, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline de relatórios")
	} else {
		logrus.Info("Agendador do pipeline de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, pipeline, reportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package reporting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-report-pipeline/internal/config"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeExtractor struct {
	table *domain.Table
	jobs  []*domain.ReportJob
	err   error
}

func (f *fakeExtractor) Extract(_ context.Context, _ map[string]string) (*domain.Table, []*domain.ReportJob, error) {
	return f.table, f.jobs, f.err
}

type fakeEnricher struct {
	rows   []*domain.EnrichedRow
	report *domain.Report
}

func (f *fakeEnricher) Enrich(_ *domain.Table) []*domain.EnrichedRow {
	return f.rows
}

func (f *fakeEnricher) Project(_ *domain.Table, _ []*domain.EnrichedRow) *domain.Report {
	return f.report
}

type fakeWriter struct {
	written *domain.Report
	err     error
}

func (f *fakeWriter) Write(report *domain.Report) error {
	f.written = report
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Clients: map[string]string{"Loja A": "111"},
		Report: config.Report{
			OutputPath: "relatorio_consolidado_clientes.csv",
		},
	}
}

func populatedTable() *domain.Table {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{DateStart: "2026-08-20", Spend: "10"},
	}, []string{domain.ColumnDateStart, domain.ColumnSpend})
	return table
}

func TestRun_SemClientesConfiguradosRetornaErro(t *testing.T) {
	cfg := testConfig()
	cfg.Clients = nil

	service := NewService(cfg, &fakeExtractor{}, &fakeEnricher{}, &fakeWriter{})

	err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, service.LastRun())
}

func TestRun_FluxoCompletoComHistorico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := populatedTable()
	jobs := []*domain.ReportJob{
		{Target: domain.AccountTarget{ClientName: "Loja A"}, Status: domain.JobStatusCompleted},
		{Target: domain.AccountTarget{ClientName: "Loja B"}, Status: domain.JobStatusFailed},
	}
	enrichedRows := []*domain.EnrichedRow{{Cliente: "Loja A", Gasto: 10}}
	report := &domain.Report{
		Columns: []string{"Cliente"},
		Rows:    [][]string{{"Loja A"}},
	}

	extractor := &fakeExtractor{table: table, jobs: jobs}
	enricher := &fakeEnricher{rows: enrichedRows, report: report}
	writer := &fakeWriter{}

	mockRepo := mocks.NewMockReportRepository(ctrl)
	mockRepo.EXPECT().GetLastRunSummary().Return(nil, nil)
	mockRepo.EXPECT().SaveRows(gomock.Any(), enrichedRows).Return(nil)
	mockRepo.EXPECT().SaveRunSummary(gomock.Any()).Return(nil)

	service := NewService(testConfig(), extractor, enricher, writer).WithHistory(mockRepo)

	err := service.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, report, writer.written)

	lastRun := service.LastRun()
	require.NotNil(t, lastRun)
	assert.NotEmpty(t, lastRun.RunID)
	assert.Equal(t, 2, lastRun.JobsSubmitted)
	assert.Equal(t, 1, lastRun.JobsCompleted)
	assert.Equal(t, 1, lastRun.JobsFailed)
	assert.Equal(t, 1, lastRun.Rows)
	assert.Equal(t, "relatorio_consolidado_clientes.csv", lastRun.OutputPath)
}

func TestRun_ExtracaoVaziaNaoEscreveRelatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := &fakeExtractor{table: domain.NewTable()}
	writer := &fakeWriter{}

	mockRepo := mocks.NewMockReportRepository(ctrl)
	mockRepo.EXPECT().GetLastRunSummary().Return(nil, nil)
	mockRepo.EXPECT().SaveRunSummary(gomock.Any()).Return(nil)

	service := NewService(testConfig(), extractor, &fakeEnricher{}, writer).WithHistory(mockRepo)

	err := service.Run(context.Background())

	require.NoError(t, err)
	assert.Nil(t, writer.written)

	lastRun := service.LastRun()
	require.NotNil(t, lastRun)
	assert.Equal(t, 0, lastRun.Rows)
}

func TestWithHistory_RecuperaResumoDaUltimaExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := &domain.RunSummary{RunID: "abc123", Rows: 42}

	mockRepo := mocks.NewMockReportRepository(ctrl)
	mockRepo.EXPECT().GetLastRunSummary().Return(persisted, nil)

	service := NewService(testConfig(), &fakeExtractor{}, &fakeEnricher{}, &fakeWriter{}).
		WithHistory(mockRepo)

	assert.Equal(t, persisted, service.LastRun())
}

func TestRun_ErroDeExtracaoPropaga(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("o mapa de clientes e contas está vazio")}

	service := NewService(testConfig(), extractor, &fakeEnricher{}, &fakeWriter{})

	err := service.Run(context.Background())

	assert.Error(t, err)
}

func TestRun_ErroDeEscritaPropaga(t *testing.T) {
	extractor := &fakeExtractor{table: populatedTable()}
	enricher := &fakeEnricher{
		rows:   []*domain.EnrichedRow{{Cliente: "Loja A"}},
		report: &domain.Report{Columns: []string{"Cliente"}, Rows: [][]string{{"Loja A"}}},
	}
	writer := &fakeWriter{err: errors.New("disco cheio")}

	service := NewService(testConfig(), extractor, enricher, writer)

	err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, service.LastRun())
}

func TestRun_FalhaAoSalvarHistoricoNaoAbortaPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := &fakeExtractor{table: populatedTable()}
	enricher := &fakeEnricher{
		rows:   []*domain.EnrichedRow{{Cliente: "Loja A"}},
		report: &domain.Report{Columns: []string{"Cliente"}, Rows: [][]string{{"Loja A"}}},
	}
	writer := &fakeWriter{}

	mockRepo := mocks.NewMockReportRepository(ctrl)
	mockRepo.EXPECT().GetLastRunSummary().Return(nil, nil)
	mockRepo.EXPECT().SaveRows(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))
	mockRepo.EXPECT().SaveRunSummary(gomock.Any()).Return(errors.New("conexão perdida"))

	service := NewService(testConfig(), extractor, enricher, writer).WithHistory(mockRepo)

	err := service.Run(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, writer.written)
	assert.NotNil(t, service.LastRun())
}

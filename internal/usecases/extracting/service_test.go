package extracting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(client *mocks.MockClient) *Service {
	service := NewService(client, 5*time.Second, nil)
	service.sleep = func(time.Duration) {}
	return service
}

func pendingJob(client, runID string) *domain.ReportJob {
	return &domain.ReportJob{
		Target: domain.AccountTarget{
			ClientName: client,
			AccountID:  "act_" + client,
		},
		ReportRunID: runID,
		Status:      domain.JobStatusPending,
	}
}

func TestSubmitJobs_FalhaDeUmaContaNaoAbortaOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		CreateReportRun("111").
		Return(&metadomain.ReportRun{ReportRunID: "run-111"}, nil)

	mockClient.EXPECT().
		CreateReportRun("222").
		Return(nil, &metadomain.RequestError{StatusCode: 400, Code: 100, Message: "conta inválida"})

	service := newTestService(mockClient)

	jobs := service.SubmitJobs(map[string]string{
		"Loja A": "111",
		"Loja B": "222",
	})

	require.Len(t, jobs, 1)
	assert.Equal(t, "Loja A", jobs[0].Target.ClientName)
	assert.Equal(t, "run-111", jobs[0].ReportRunID)
	assert.Equal(t, domain.JobStatusPending, jobs[0].Status)
}

func TestPollUntilDone_JobConcluiEConsolidaLinhasComCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// Primeira rodada ainda em execução, segunda rodada concluído
	gomock.InOrder(
		mockClient.EXPECT().
			GetReportRunStatus("run-1").
			Return(&metadomain.ReportRunStatus{ID: "run-1", AsyncStatus: metadomain.RunStatusRunning, AsyncPercentCompletion: 40}, nil),
		mockClient.EXPECT().
			GetReportRunStatus("run-1").
			Return(&metadomain.ReportRunStatus{ID: "run-1", AsyncStatus: metadomain.RunStatusCompleted, AsyncPercentCompletion: 100}, nil),
	)

	mockClient.EXPECT().
		GetReportRunResults("run-1").
		Return(&metadomain.ResultSet{
			Rows: []*metadomain.InsightRow{
				{DateStart: "2026-08-20", CampaignName: "Campanha X", Spend: "12.5"},
				{DateStart: "2026-08-21", CampaignName: "Campanha X", Spend: "7.5"},
			},
			Columns: []string{domain.ColumnDateStart, domain.ColumnCampaignName, domain.ColumnSpend},
		}, nil)

	service := newTestService(mockClient)

	job := pendingJob("Loja A", "run-1")
	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{job})

	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Loja A", table.Rows[0].ClientName)
	assert.Equal(t, "Loja A", table.Rows[1].ClientName)
	assert.True(t, table.HasColumn(domain.ColumnClientName))
	assert.True(t, table.HasColumn(domain.ColumnSpend))
}

func TestPollUntilDone_JobFalhadoNaoRessuscita(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// O job falhado sai do conjunto ativo na primeira rodada; o outro
	// continua e é consultado novamente na rodada seguinte
	gomock.InOrder(
		mockClient.EXPECT().
			GetReportRunStatus("run-falha").
			Return(&metadomain.ReportRunStatus{ID: "run-falha", AsyncStatus: metadomain.RunStatusFailed, AsyncPercentCompletion: 80}, nil),
	)

	gomock.InOrder(
		mockClient.EXPECT().
			GetReportRunStatus("run-ok").
			Return(&metadomain.ReportRunStatus{ID: "run-ok", AsyncStatus: metadomain.RunStatusRunning}, nil),
		mockClient.EXPECT().
			GetReportRunStatus("run-ok").
			Return(&metadomain.ReportRunStatus{ID: "run-ok", AsyncStatus: metadomain.RunStatusCompleted}, nil),
	)

	mockClient.EXPECT().
		GetReportRunResults("run-ok").
		Return(&metadomain.ResultSet{
			Rows:    []*metadomain.InsightRow{{DateStart: "2026-08-20", Spend: "3.0"}},
			Columns: []string{domain.ColumnDateStart, domain.ColumnSpend},
		}, nil)

	service := newTestService(mockClient)

	failed := pendingJob("Loja A", "run-falha")
	ok := pendingJob("Loja B", "run-ok")

	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{failed, ok})

	assert.Equal(t, domain.JobStatusFailed, failed.Status)
	assert.Equal(t, metadomain.RunStatusFailed, failed.LastError)
	assert.Equal(t, domain.JobStatusCompleted, ok.Status)
	assert.Equal(t, 1, table.Len())
}

func TestPollUntilDone_JobPuladoTerminaSemLinhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetReportRunStatus("run-skip").
		Return(&metadomain.ReportRunStatus{ID: "run-skip", AsyncStatus: metadomain.RunStatusSkipped}, nil)

	service := newTestService(mockClient)

	job := pendingJob("Loja A", "run-skip")
	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{job})

	assert.Equal(t, domain.JobStatusSkipped, job.Status)
	assert.True(t, table.IsEmpty())
}

func TestPollUntilDone_ErroTransitorioMantemJobAtivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	transient := &metadomain.RequestError{
		StatusCode: 500,
		Code:       1,
		Message:    "An unknown error occurred",
		Transient:  true,
	}

	gomock.InOrder(
		mockClient.EXPECT().
			GetReportRunStatus("run-1").
			Return(nil, transient),
		mockClient.EXPECT().
			GetReportRunStatus("run-1").
			Return(&metadomain.ReportRunStatus{ID: "run-1", AsyncStatus: metadomain.RunStatusCompleted}, nil),
	)

	mockClient.EXPECT().
		GetReportRunResults("run-1").
		Return(&metadomain.ResultSet{
			Rows:    []*metadomain.InsightRow{{DateStart: "2026-08-20", Spend: "1.0"}},
			Columns: []string{domain.ColumnDateStart, domain.ColumnSpend},
		}, nil)

	service := newTestService(mockClient)

	job := pendingJob("Loja A", "run-1")
	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{job})

	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Equal(t, 1, table.Len())
}

func TestPollUntilDone_ErroPermanenteDescartaJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	permanent := &metadomain.RequestError{
		StatusCode: 400,
		Code:       100,
		Message:    "Unsupported get request",
	}

	mockClient.EXPECT().
		GetReportRunStatus("run-1").
		Return(nil, permanent)

	service := newTestService(mockClient)

	job := pendingJob("Loja A", "run-1")
	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{job})

	assert.Equal(t, domain.JobStatusFailed, job.Status)
	assert.Equal(t, permanent.Error(), job.LastError)
	assert.True(t, table.IsEmpty())
}

func TestPollUntilDone_ErroTransitorioNaBuscaDeResultadosReconsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	transient := &metadomain.RequestError{StatusCode: 503, Transient: true, Message: "service unavailable"}

	gomock.InOrder(
		mockClient.EXPECT().
			GetReportRunStatus("run-1").
			Return(&metadomain.ReportRunStatus{ID: "run-1", AsyncStatus: metadomain.RunStatusCompleted}, nil),
		mockClient.EXPECT().
			GetReportRunResults("run-1").
			Return(nil, transient),
		mockClient.EXPECT().
			GetReportRunStatus("run-1").
			Return(&metadomain.ReportRunStatus{ID: "run-1", AsyncStatus: metadomain.RunStatusCompleted}, nil),
		mockClient.EXPECT().
			GetReportRunResults("run-1").
			Return(&metadomain.ResultSet{
				Rows:    []*metadomain.InsightRow{{DateStart: "2026-08-20", Spend: "2.0"}},
				Columns: []string{domain.ColumnDateStart, domain.ColumnSpend},
			}, nil),
	)

	service := newTestService(mockClient)

	job := pendingJob("Loja A", "run-1")
	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{job})

	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Equal(t, 1, table.Len())
}

func TestPollUntilDone_ConcluidoSemDadosTerminaComAviso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetReportRunStatus("run-1").
		Return(&metadomain.ReportRunStatus{ID: "run-1", AsyncStatus: metadomain.RunStatusCompleted}, nil)

	mockClient.EXPECT().
		GetReportRunResults("run-1").
		Return(&metadomain.ResultSet{Rows: nil, Columns: nil}, nil)

	service := newTestService(mockClient)

	job := pendingJob("Loja A", "run-1")
	table := service.PollUntilDone(context.Background(), []*domain.ReportJob{job})

	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.True(t, table.IsEmpty())
	assert.False(t, table.HasColumn(domain.ColumnClientName))
}

func TestPollUntilDone_TodosTerminaisNaoFazNenhumaRodada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada no cliente
	mockClient := mocks.NewMockClient(ctrl)

	service := NewService(mockClient, 5*time.Second, nil)
	slept := false
	service.sleep = func(time.Duration) { slept = true }

	jobs := []*domain.ReportJob{
		{Target: domain.AccountTarget{ClientName: "Loja A"}, ReportRunID: "run-1", Status: domain.JobStatusCompleted},
		{Target: domain.AccountTarget{ClientName: "Loja B"}, ReportRunID: "run-2", Status: domain.JobStatusFailed},
	}

	table := service.PollUntilDone(context.Background(), jobs)

	assert.True(t, table.IsEmpty())
	assert.False(t, slept)
}

func TestPollUntilDone_ContextoCanceladoAbandonaJobsPendentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	service := NewService(mockClient, 5*time.Second, nil)
	service.sleep = func(time.Duration) {
		// Simula espera maior que a vida do contexto
		time.Sleep(50 * time.Millisecond)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := pendingJob("Loja A", "run-1")
	table := service.PollUntilDone(ctx, []*domain.ReportJob{job})

	assert.True(t, table.IsEmpty())
	assert.Equal(t, domain.JobStatusPending, job.Status)
}

func TestExtract_MapaVazioRetornaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	table, jobs, err := service.Extract(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, table)
	assert.Nil(t, jobs)
}

func TestExtract_FluxoCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		CreateReportRun("111").
		Return(&metadomain.ReportRun{ReportRunID: "run-111"}, nil)

	mockClient.EXPECT().
		GetReportRunStatus("run-111").
		Return(&metadomain.ReportRunStatus{ID: "run-111", AsyncStatus: metadomain.RunStatusCompleted}, nil)

	mockClient.EXPECT().
		GetReportRunResults("run-111").
		Return(&metadomain.ResultSet{
			Rows:    []*metadomain.InsightRow{{DateStart: "2026-08-20", Spend: "10.0"}},
			Columns: []string{domain.ColumnDateStart, domain.ColumnSpend},
		}, nil)

	service := newTestService(mockClient)

	table, jobs, err := service.Extract(context.Background(), map[string]string{"Loja A": "111"})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.JobStatusCompleted, jobs[0].Status)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Loja A", table.Rows[0].ClientName)
}

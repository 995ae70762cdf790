package enriching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
)

func TestExtractActionValue(t *testing.T) {
	tests := []struct {
		name       string
		values     []domain.ActionValue
		actionType string
		expected   float64
	}{
		{
			name:       "lista nula retorna zero",
			values:     nil,
			actionType: "purchase",
			expected:   0,
		},
		{
			name:       "lista vazia retorna zero",
			values:     []domain.ActionValue{},
			actionType: "purchase",
			expected:   0,
		},
		{
			name: "tipo ausente retorna zero",
			values: []domain.ActionValue{
				{ActionType: "link_click", Value: "10"},
			},
			actionType: "purchase",
			expected:   0,
		},
		{
			name: "tipo presente retorna o valor",
			values: []domain.ActionValue{
				{ActionType: "link_click", Value: "10"},
				{ActionType: "purchase", Value: "3"},
			},
			actionType: "purchase",
			expected:   3,
		},
		{
			name: "tipo duplicado usa a primeira ocorrência",
			values: []domain.ActionValue{
				{ActionType: "purchase", Value: "2"},
				{ActionType: "purchase", Value: "99"},
			},
			actionType: "purchase",
			expected:   2,
		},
		{
			name: "valor não numérico vira zero",
			values: []domain.ActionValue{
				{ActionType: "purchase", Value: "abc"},
			},
			actionType: "purchase",
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractActionValue(tt.values, tt.actionType))
		})
	}
}

func TestSumActionValues_SomaSinonimosDeCompra(t *testing.T) {
	values := []domain.ActionValue{
		{ActionType: "purchase", Value: "2"},
		{ActionType: "omni_purchase", Value: "1"},
		{ActionType: "link_click", Value: "50"},
	}

	assert.Equal(t, 3.0, SumActionValues(values, PurchaseActionTypes))
}

func TestWeekdayLabel(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2026-08-24", "Segunda-feira"},
		{"2026-08-25", "Terça-feira"},
		{"2026-08-26", "Quarta-feira"},
		{"2026-08-27", "Quinta-feira"},
		{"2026-08-28", "Sexta-feira"},
		{"2026-08-29", "Sábado"},
		{"2026-08-30", "Domingo"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			date, err := time.Parse(time.DateOnly, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, WeekdayLabel(date))
		})
	}
}

func TestEnrich_DerivaMetricasDeCompra(t *testing.T) {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{
			DateStart:    "2026-08-20",
			CampaignName: "Campanha X",
			Spend:        "100",
			Actions: []domain.ActionValue{
				{ActionType: "purchase", Value: "2"},
				{ActionType: "omni_purchase", Value: "1"},
			},
			ActionValues: []domain.ActionValue{
				{ActionType: "purchase", Value: "30"},
				{ActionType: "omni_purchase", Value: "20"},
			},
		},
	}, []string{domain.ColumnDateStart, domain.ColumnSpend, domain.ColumnActions, domain.ColumnActionValues})

	service := NewService()
	rows := service.Enrich(table)

	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, "Loja A", row.Cliente)
	assert.Equal(t, "Quinta-feira", row.DiaSemana)
	assert.Equal(t, 100.0, row.Gasto)
	assert.Equal(t, 3.0, row.Compras)
	assert.Equal(t, 50.0, row.ReceitaCompras)
	assert.Equal(t, 0.5, row.ROAS)
	assert.Equal(t, 33.33, row.CPA)
	assert.Equal(t, -50.0, row.ResultadoLucro)
}

func TestEnrich_RazoesComDenominadorZero(t *testing.T) {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{
			DateStart: "2026-08-20",
			Spend:     "0",
			ActionValues: []domain.ActionValue{
				{ActionType: "purchase", Value: "10"},
			},
		},
	}, []string{domain.ColumnDateStart, domain.ColumnSpend, domain.ColumnActionValues})

	service := NewService()
	rows := service.Enrich(table)

	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].ROAS)
	assert.Equal(t, 0.0, rows[0].CPA)
	assert.Equal(t, 10.0, rows[0].ResultadoLucro)
}

func TestEnrich_DescartaLinhaSemData(t *testing.T) {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{DateStart: "", Spend: "10"},
		{DateStart: "2026-08-20", Spend: "20"},
	}, []string{domain.ColumnDateStart, domain.ColumnSpend})

	service := NewService()
	rows := service.Enrich(table)

	require.Len(t, rows, 1)
	assert.Equal(t, 20.0, rows[0].Gasto)
}

func TestEnrich_CamposNumericosInvalidosViramZero(t *testing.T) {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{DateStart: "2026-08-20", Spend: "n/a", Impressions: "", Reach: "xyz"},
	}, []string{domain.ColumnDateStart, domain.ColumnSpend})

	service := NewService()
	rows := service.Enrich(table)

	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Gasto)
	assert.Equal(t, 0.0, rows[0].Impressoes)
	assert.Equal(t, 0.0, rows[0].Alcance)
}

func TestEnrich_TabelaVaziaRetornaNil(t *testing.T) {
	service := NewService()

	assert.Nil(t, service.Enrich(nil))
	assert.Nil(t, service.Enrich(domain.NewTable()))
}

func TestProject_OmiteColunasAusentesEmSilencio(t *testing.T) {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{DateStart: "2026-08-20", Spend: "10"},
	}, []string{domain.ColumnDateStart, domain.ColumnSpend})

	service := NewService()
	rows := service.Enrich(table)
	report := service.Project(table, rows)

	assert.Contains(t, report.Columns, "Cliente")
	assert.Contains(t, report.Columns, "Data")
	assert.Contains(t, report.Columns, "Dia da Semana")
	assert.Contains(t, report.Columns, "Gasto (R$)")

	// Colunas cujas origens não vieram em nenhum resultado ficam de fora
	assert.NotContains(t, report.Columns, "Campanha")
	assert.NotContains(t, report.Columns, "Compras")
	assert.NotContains(t, report.Columns, "ROAS")

	require.Len(t, report.Rows, 1)
	assert.Len(t, report.Rows[0], len(report.Columns))
}

func TestProject_OrdemFixaDeColunas(t *testing.T) {
	table := domain.NewTable()
	table.Append("Loja A", []*domain.InsightRow{
		{
			DateStart:    "2026-08-20",
			CampaignName: "Campanha X",
			CampaignID:   "c1",
			AdsetName:    "Conjunto Y",
			AdsetID:      "a1",
			Spend:        "100",
			Impressions:  "1000",
			Reach:        "800",
			CTR:          "1.5",
			CPC:          "0.8",
			CostPerActionType: []domain.ActionValue{
				{ActionType: ActionLandingPageView, Value: "2.5"},
				{ActionType: ActionMessagingConversation, Value: "4"},
			},
			Actions: []domain.ActionValue{
				{ActionType: "purchase", Value: "2"},
			},
			ActionValues: []domain.ActionValue{
				{ActionType: "purchase", Value: "300"},
			},
		},
	}, []string{
		domain.ColumnDateStart,
		domain.ColumnCampaignName,
		domain.ColumnCampaignID,
		domain.ColumnAdsetName,
		domain.ColumnAdsetID,
		domain.ColumnSpend,
		domain.ColumnImpressions,
		domain.ColumnReach,
		domain.ColumnCTR,
		domain.ColumnCPC,
		domain.ColumnCostPerActionType,
		domain.ColumnActions,
		domain.ColumnActionValues,
	})

	service := NewService()
	rows := service.Enrich(table)
	report := service.Project(table, rows)

	expected := []string{
		"Cliente",
		"Data",
		"Dia da Semana",
		"Campanha",
		"ID da Campanha",
		"Conjunto de Anúncios",
		"ID do Conjunto de Anúncios",
		"Gasto (R$)",
		"Impressões",
		"Alcance",
		"CTR (%)",
		"CPC (R$)",
		"Custo por Visita (R$)",
		"Custo por Mensagem (R$)",
		"Compras",
		"Receita de Compras (R$)",
		"ROAS",
		"CPA (R$)",
		"Resultado (R$)",
	}
	assert.Equal(t, expected, report.Columns)

	require.Len(t, report.Rows, 1)
	values := report.Rows[0]
	assert.Equal(t, "Loja A", values[0])
	assert.Equal(t, "2026-08-20", values[1])
	assert.Equal(t, "Quinta-feira", values[2])
	assert.Equal(t, "100", values[7])
	assert.Equal(t, "2", values[14])
	assert.Equal(t, "300", values[15])
	assert.Equal(t, "3", values[16])
	assert.Equal(t, "50", values[17])
	assert.Equal(t, "200", values[18])
}

func TestProject_SemLinhasRetornaRelatorioVazio(t *testing.T) {
	service := NewService()

	report := service.Project(domain.NewTable(), nil)

	assert.True(t, report.IsEmpty())
	assert.Empty(t, report.Columns)
}

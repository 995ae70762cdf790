package enriching

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
	"github.com/vfg2006/meta-report-pipeline/pkg/utils"
)

// Tipos de ação usados na derivação de métricas
const (
	ActionLandingPageView       = "landing_page_view"
	ActionMessagingConversation = "onsite_conversion.messaging_conversation_started_7d"
)

// PurchaseActionTypes são os sinônimos de compra somados em um único total:
// eventos de pixel e eventos nativos da plataforma contam juntos
var PurchaseActionTypes = []string{
	"purchase",
	"omni_purchase",
	"offsite_conversion.fb_pixel_purchase",
	"onsite_conversion.purchase",
}

// diasDaSemana mapeia o índice 0=segunda..6=domingo para o rótulo fixo em
// português. Tabela enumerada, não um formatador de locale, para manter a
// saída determinística entre ambientes.
var diasDaSemana = map[int]string{
	0: "Segunda-feira",
	1: "Terça-feira",
	2: "Quarta-feira",
	3: "Quinta-feira",
	4: "Sexta-feira",
	5: "Sábado",
	6: "Domingo",
}

// Service deriva as métricas de negócio da tabela consolidada e projeta o
// relatório final com colunas renomeadas em português
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ExtractActionValue busca o valor numérico de um tipo de ação em uma lista
// de pares (action_type, value). Retorna 0 para lista ausente, vazia ou sem
// o tipo procurado. A busca é first-match por decisão explícita: se o mesmo
// tipo aparecer duplicado, apenas a primeira ocorrência é usada.
func ExtractActionValue(values []domain.ActionValue, actionType string) float64 {
	for _, v := range values {
		if v.ActionType == actionType {
			return utils.ParseFloatOrZero(v.Value)
		}
	}
	return 0
}

// SumActionValues soma os valores de um conjunto de tipos de ação,
// extraindo cada tipo com a mesma política first-match
func SumActionValues(values []domain.ActionValue, actionTypes []string) float64 {
	total := 0.0
	for _, actionType := range actionTypes {
		total += ExtractActionValue(values, actionType)
	}
	return total
}

// WeekdayLabel devolve o rótulo do dia da semana para uma data, com a
// semana começando na segunda-feira
func WeekdayLabel(date time.Time) string {
	index := (int(date.Weekday()) + 6) % 7
	return diasDaSemana[index]
}

// Enrich deriva as métricas de cada linha consolidada. Linhas sem a data do
// relatório são descartadas com aviso, pois perdem a origem (cliente, conta,
// dia).
func (s *Service) Enrich(table *domain.Table) []*domain.EnrichedRow {
	if table == nil || table.IsEmpty() {
		return nil
	}

	logrus.Info("Iniciando pós-processamento da tabela consolidada")

	enriched := make([]*domain.EnrichedRow, 0, table.Len())

	for _, row := range table.Rows {
		date, err := time.Parse(time.DateOnly, row.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client":     row.ClientName,
				"date_start": row.DateStart,
			}).Warn("Linha sem data de relatório válida; descartando")
			continue
		}

		gasto := utils.ParseFloatOrZero(row.Spend)
		compras := SumActionValues(row.Actions, PurchaseActionTypes)
		receita := SumActionValues(row.ActionValues, PurchaseActionTypes)

		// Razões com denominador zero resolvem para 0, nunca erro de divisão
		roas := 0.0
		if gasto > 0 {
			roas = receita / gasto
		}

		cpa := 0.0
		if compras > 0 {
			cpa = gasto / compras
		}

		enriched = append(enriched, &domain.EnrichedRow{
			Cliente:          row.ClientName,
			Data:             date,
			DiaSemana:        WeekdayLabel(date),
			Campanha:         row.CampaignName,
			CampanhaID:       row.CampaignID,
			Conjunto:         row.AdsetName,
			ConjuntoID:       row.AdsetID,
			Gasto:            gasto,
			Impressoes:       utils.ParseFloatOrZero(row.Impressions),
			Alcance:          utils.ParseFloatOrZero(row.Reach),
			CTR:              utils.ParseFloatOrZero(row.CTR),
			CPC:              utils.ParseFloatOrZero(row.CPC),
			CustoPorVisita:   ExtractActionValue(row.CostPerActionType, ActionLandingPageView),
			CustoPorMensagem: ExtractActionValue(row.CostPerActionType, ActionMessagingConversation),
			Compras:          compras,
			ReceitaCompras:   receita,
			ROAS:             utils.RoundWithTwoDecimalPlace(roas),
			CPA:              utils.RoundWithTwoDecimalPlace(cpa),
			ResultadoLucro:   utils.RoundWithTwoDecimalPlace(receita - gasto),
		})
	}

	logrus.WithField("rows", len(enriched)).Info("Pós-processamento concluído")

	return enriched
}

// reportColumn declara uma coluna da projeção final: o rótulo de saída, a
// coluna de origem que precisa ter aparecido na tabela consolidada ("" para
// colunas sempre presentes) e o extrator de valor formatado
type reportColumn struct {
	label  string
	source string
	value  func(r *domain.EnrichedRow) string
}

// reportColumns é a lista fixa e ordenada de colunas do relatório final
var reportColumns = []reportColumn{
	{"Cliente", domain.ColumnClientName, func(r *domain.EnrichedRow) string { return r.Cliente }},
	{"Data", domain.ColumnDateStart, func(r *domain.EnrichedRow) string { return r.Data.Format(time.DateOnly) }},
	{"Dia da Semana", domain.ColumnDateStart, func(r *domain.EnrichedRow) string { return r.DiaSemana }},
	{"Campanha", domain.ColumnCampaignName, func(r *domain.EnrichedRow) string { return r.Campanha }},
	{"ID da Campanha", domain.ColumnCampaignID, func(r *domain.EnrichedRow) string { return r.CampanhaID }},
	{"Conjunto de Anúncios", domain.ColumnAdsetName, func(r *domain.EnrichedRow) string { return r.Conjunto }},
	{"ID do Conjunto de Anúncios", domain.ColumnAdsetID, func(r *domain.EnrichedRow) string { return r.ConjuntoID }},
	{"Gasto (R$)", domain.ColumnSpend, func(r *domain.EnrichedRow) string { return formatNumber(r.Gasto) }},
	{"Impressões", domain.ColumnImpressions, func(r *domain.EnrichedRow) string { return formatNumber(r.Impressoes) }},
	{"Alcance", domain.ColumnReach, func(r *domain.EnrichedRow) string { return formatNumber(r.Alcance) }},
	{"CTR (%)", domain.ColumnCTR, func(r *domain.EnrichedRow) string { return formatNumber(r.CTR) }},
	{"CPC (R$)", domain.ColumnCPC, func(r *domain.EnrichedRow) string { return formatNumber(r.CPC) }},
	{"Custo por Visita (R$)", domain.ColumnCostPerActionType, func(r *domain.EnrichedRow) string { return formatNumber(r.CustoPorVisita) }},
	{"Custo por Mensagem (R$)", domain.ColumnCostPerActionType, func(r *domain.EnrichedRow) string { return formatNumber(r.CustoPorMensagem) }},
	{"Compras", domain.ColumnActions, func(r *domain.EnrichedRow) string { return formatNumber(r.Compras) }},
	{"Receita de Compras (R$)", domain.ColumnActionValues, func(r *domain.EnrichedRow) string { return formatNumber(r.ReceitaCompras) }},
	{"ROAS", domain.ColumnActionValues, func(r *domain.EnrichedRow) string { return formatNumber(r.ROAS) }},
	{"CPA (R$)", domain.ColumnActions, func(r *domain.EnrichedRow) string { return formatNumber(r.CPA) }},
	{"Resultado (R$)", domain.ColumnActionValues, func(r *domain.EnrichedRow) string { return formatNumber(r.ResultadoLucro) }},
}

// Project monta o relatório final na ordem fixa de colunas. Colunas cuja
// origem não apareceu em nenhum resultado são omitidas em silêncio, não é
// erro: projeção tolerante.
func (s *Service) Project(table *domain.Table, rows []*domain.EnrichedRow) *domain.Report {
	if table == nil || len(rows) == 0 {
		return &domain.Report{}
	}

	columns := make([]reportColumn, 0, len(reportColumns))
	for _, column := range reportColumns {
		if column.source == "" || table.HasColumn(column.source) {
			columns = append(columns, column)
		}
	}

	report := &domain.Report{
		Columns: make([]string, 0, len(columns)),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, column := range columns {
		report.Columns = append(report.Columns, column.label)
	}

	for _, row := range rows {
		values := make([]string, 0, len(columns))
		for _, column := range columns {
			values = append(values, column.value(row))
		}
		report.Rows = append(report.Rows, values)
	}

	return report
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package domain

// Nomes das colunas como chegam da API de insights. A projeção final só
// emite colunas derivadas de campos que de fato apareceram nos resultados.
const (
	ColumnDateStart         = "date_start"
	ColumnCampaignName      = "campaign_name"
	ColumnCampaignID        = "campaign_id"
	ColumnAdsetName         = "adset_name"
	ColumnAdsetID           = "adset_id"
	ColumnSpend             = "spend"
	ColumnReach             = "reach"
	ColumnImpressions       = "impressions"
	ColumnCTR               = "ctr"
	ColumnCPC               = "cpc"
	ColumnCostPerActionType = "cost_per_action_type"
	ColumnActions           = "actions"
	ColumnActionValues      = "action_values"
	ColumnClientName        = "nome_cliente"
)

// ActionValue é um par (tipo de ação, valor) das listas aninhadas de insights.
// O valor chega como string da API, igual aos demais campos numéricos.
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de performance de um dia de uma conta, já marcada
// com o nome do cliente dono da conta
type InsightRow struct {
	ClientName        string        `json:"nome_cliente"`
	DateStart         string        `json:"date_start"`
	CampaignName      string        `json:"campaign_name"`
	CampaignID        string        `json:"campaign_id"`
	AdsetName         string        `json:"adset_name"`
	AdsetID           string        `json:"adset_id"`
	Spend             string        `json:"spend"`
	Reach             string        `json:"reach"`
	Impressions       string        `json:"impressions"`
	CTR               string        `json:"ctr"`
	CPC               string        `json:"cpc"`
	CostPerActionType []ActionValue `json:"cost_per_action_type"`
	Actions           []ActionValue `json:"actions"`
	ActionValues      []ActionValue `json:"action_values"`
}

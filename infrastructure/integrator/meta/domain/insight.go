package metadomain

// ActionValue é um item das listas aninhadas de ações ("actions",
// "action_values", "cost_per_action_type"). O valor chega como string.
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de insight como retornada pela API, no nível de
// conjunto de anúncios com granularidade diária
type InsightRow struct {
	DateStart         string        `json:"date_start"`
	DateStop          string        `json:"date_stop"`
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

// ResultSet agrupa as linhas de um report run concluído e o conjunto de
// campos que de fato vieram no payload, já que o esquema pode variar por job
type ResultSet struct {
	Rows    []*InsightRow
	Columns []string
}

package domain

import "time"

// EnrichedRow é uma linha consolidada com as métricas de negócio derivadas.
// Cada linha tem origem em exatamente um (cliente, conta, dia de relatório).
type EnrichedRow struct {
	Cliente          string    `json:"cliente"`
	Data             time.Time `json:"data"`
	DiaSemana        string    `json:"dia_semana"`
	Campanha         string    `json:"campanha"`
	CampanhaID       string    `json:"campanha_id"`
	Conjunto         string    `json:"conjunto_anuncios"`
	ConjuntoID       string    `json:"conjunto_anuncios_id"`
	Gasto            float64   `json:"gasto"`
	Impressoes       float64   `json:"impressoes"`
	Alcance          float64   `json:"alcance"`
	CTR              float64   `json:"ctr"`
	CPC              float64   `json:"cpc"`
	CustoPorVisita   float64   `json:"custo_por_visita"`
	CustoPorMensagem float64   `json:"custo_por_mensagem"`
	Compras          float64   `json:"compras"`
	ReceitaCompras   float64   `json:"receita_compras"`
	ROAS             float64   `json:"roas"`
	CPA              float64   `json:"cpa"`
	ResultadoLucro   float64   `json:"resultado_lucro"`
}

// Report é o artefato final: colunas nomeadas em ordem fixa e linhas já
// projetadas e formatadas, prontas para serialização por um colaborador
// externo (CSV, planilha)
type Report struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (r *Report) IsEmpty() bool {
	return r == nil || len(r.Rows) == 0
}

package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
)

// InsightFields é o conjunto fixo de campos extraídos por report run
const InsightFields = "date_start,campaign_name,campaign_id,adset_name,adset_id," +
	"spend,reach,impressions,ctr,cpc,cost_per_action_type,actions,action_values"

// insightLevel fixa a granularidade do relatório: uma linha por conjunto de
// anúncios por dia
const insightLevel = "adset"

// CreateReportRun submete um report run assíncrono cobrindo a janela de
// lookback configurada. O handle retornado é consultado depois via
// GetReportRunStatus até o run concluir.
func (c *MetaClient) CreateReportRun(accountID string) (*metadomain.ReportRun, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	until := time.Now().AddDate(0, 0, -1)
	since := until.AddDate(0, 0, -c.Cfg.Report.LookbackDays+1)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("is_async", "true")
	params.Add("fields", InsightFields)
	params.Add("level", insightLevel)
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("limit", strconv.Itoa(c.Cfg.Report.PageLimit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest(http.MethodPost, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de report run")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição de report run")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var run metadomain.ReportRun
	if err := json.Unmarshal(body, &run); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do report run")
		return nil, err
	}

	if run.ReportRunID == "" {
		return nil, fmt.Errorf("resposta sem report_run_id para a conta %s", accountID)
	}

	return &run, nil
}

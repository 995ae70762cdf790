package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
)

// GetReportRunStatus consulta o andamento de um report run assíncrono
func (c *MetaClient) GetReportRunStatus(reportRunID string) (*metadomain.ReportRunStatus, error) {
	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, reportRunID)

	params := url.Values{}
	params.Add("fields", "id,async_status,async_percent_completion")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de status do report run")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Falha de rede antes de qualquer resposta: tratar como transitória
		return nil, &metadomain.RequestError{
			Message:   err.Error(),
			Transient: true,
		}
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var status metadomain.ReportRunStatus
	if err := json.Unmarshal(body, &status); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do status do report run")
		return nil, err
	}

	return &status, nil
}

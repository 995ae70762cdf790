package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
)

type resultsPage struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// GetReportRunResults busca todas as páginas de resultado de um report run
// concluído. Além das linhas tipadas, devolve os nomes dos campos presentes
// no payload: é a partir dessa união que a projeção final decide quais
// colunas existem.
func (c *MetaClient) GetReportRunResults(reportRunID string) (*metadomain.ResultSet, error) {
	endpoint := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, reportRunID)

	params := url.Values{}
	params.Add("limit", strconv.Itoa(c.Cfg.Report.PageLimit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	result := &metadomain.ResultSet{
		Rows: make([]*metadomain.InsightRow, 0),
	}
	seen := make(map[string]struct{})

	nextURL := endpoint + "?" + params.Encode()
	for nextURL != "" {
		page, err := c.fetchResultsPage(nextURL)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Data {
			row := &metadomain.InsightRow{}
			if err := json.Unmarshal(raw, row); err != nil {
				logrus.WithError(err).Error("Erro ao decodificar linha de insight")
				return nil, err
			}

			// Registrar os campos realmente presentes nesta linha
			var fields map[string]jsoniter.RawMessage
			if err := json.Unmarshal(raw, &fields); err == nil {
				for name := range fields {
					seen[name] = struct{}{}
				}
			}

			result.Rows = append(result.Rows, row)
		}

		nextURL = page.Paging.Next
	}

	result.Columns = make([]string, 0, len(seen))
	for name := range seen {
		result.Columns = append(result.Columns, name)
	}

	return result, nil
}

func (c *MetaClient) fetchResultsPage(pageURL string) (*resultsPage, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de resultados")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar página de resultados")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var page resultsPage
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da página de resultados")
		return nil, err
	}

	return &page, nil
}

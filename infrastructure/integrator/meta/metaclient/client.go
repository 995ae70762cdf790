package metaclient

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-report-pipeline/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client expõe o protocolo de report runs assíncronos da API de insights
type Client interface {
	// CreateReportRun submete um report run assíncrono para a conta
	CreateReportRun(accountID string) (*metadomain.ReportRun, error)
	// GetReportRunStatus consulta o status atual de um report run
	GetReportRunStatus(reportRunID string) (*metadomain.ReportRunStatus, error)
	// GetReportRunResults busca todas as páginas de resultado de um run concluído
	GetReportRunResults(reportRunID string) (*metadomain.ResultSet, error)
	RefreshToken() error
	EnsureValidToken() error
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

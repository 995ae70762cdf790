package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-report-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-report-pipeline/internal/config"
)

// TokenManager gerencia o token de acesso de longa duração da API do Meta
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
	tokenExpiresAt    time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

// StartAutoRefresh renova o token periodicamente em uma goroutine própria
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.Errorf("Erro ao obter o token de longa duração inicial: %v", err)
		logrus.Warn("A API Meta pode ter funcionalidade limitada até que o token seja renovado")
	}

	// Renovação diária, um pouco antes das 24h para nunca operar expirado
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// RefreshToken troca o token atual por um token de longa duração
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.cfg.Meta.AccessToken = tokenResponse.AccessToken
	tm.tokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
		tm.tokenExpiresAt.Format(time.RFC3339))

	return nil
}

// EnsureValidToken verifica se o token atual é válido e renova proativamente
// quando está perto de expirar
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.Meta.AccessToken == "" {
		return fmt.Errorf("token de acesso da Meta não configurado")
	}

	if !tm.tokenExpiresAt.IsZero() && time.Until(tm.tokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken()
	}

	return nil
}

// HandleResponse lê a resposta HTTP e converte erros da API em RequestError
// já classificado entre transitório e permanente
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil {
		logrus.WithField("status", resp.StatusCode).Error("Resposta de erro da API sem envelope decodificável")
		return nil, metadomain.NewRequestError(resp.StatusCode, nil)
	}

	if errorResp.IsTokenExpired() {
		logrus.Warn("Token expirado detectado na resposta da API. Tentando renovar...")
		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			logrus.Errorf("Falha ao renovar token expirado: %v", refreshErr)
		}
	}

	reqErr := metadomain.NewRequestError(resp.StatusCode, errorResp)

	logrus.WithFields(logrus.Fields{
		"status":    resp.StatusCode,
		"code":      reqErr.Code,
		"subcode":   reqErr.Subcode,
		"transient": reqErr.Transient,
		"fbtrace":   errorResp.Error.FBTraceID,
	}).Error("Erro retornado pela API do Meta")

	return nil, reqErr
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetLongLivedToken obtém um token de longa duração do Meta
// usando o token configurado
func GetLongLivedToken(currentToken, appID, appSecret, baseURL, version string) (*TokenResponse, error) {
	if currentToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	endpoint := fmt.Sprintf("%s/%s/oauth/access_token", baseURL, version)

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("fb_exchange_token", currentToken)

	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(endpoint + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token longa duração. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao obter token de longa duração. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration calcula a data de expiração do token com base no
// tempo de expiração em segundos
func CalculateTokenExpiration(expiresIn int64) time.Time {
	// Subtraímos 1 dia para renovar antes da expiração real
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return time.Now().Add(time.Duration(safeExpiresIn) * time.Second)
}

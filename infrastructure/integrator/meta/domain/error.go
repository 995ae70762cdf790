package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	IsTransient  bool        `json:"is_transient,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsTransientError classifica o erro como passageiro: vale a pena repetir a
// consulta na próxima rodada. Além do próprio flag is_transient, os códigos
// 1/2 (problema temporário da API) e 4/17/32/613 (limite de requisições)
// entram nessa categoria.
func (e *ErrorResponse) IsTransientError() bool {
	if e.Error.IsTransient {
		return true
	}

	switch e.Error.Code {
	case 1, 2, 4, 17, 32, 613:
		return true
	}

	return false
}

// RequestError é um erro de requisição à API já classificado entre
// transitório e permanente
type RequestError struct {
	StatusCode int
	Code       int
	Subcode    int
	Message    string
	Transient  bool
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("meta api: %s (code=%d, subcode=%d, status=%d)", e.Message, e.Code, e.Subcode, e.StatusCode)
}

// NewRequestError monta um RequestError a partir do envelope de erro da API
func NewRequestError(statusCode int, resp *ErrorResponse) *RequestError {
	if resp == nil {
		return &RequestError{
			StatusCode: statusCode,
			Message:    "resposta de erro sem corpo decodificável",
			Transient:  statusCode >= 500,
		}
	}

	return &RequestError{
		StatusCode: statusCode,
		Code:       resp.Error.Code,
		Subcode:    resp.Error.ErrorSubcode,
		Message:    resp.Error.Message,
		Transient:  resp.IsTransientError() || statusCode >= 500,
	}
}

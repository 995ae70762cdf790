package domain

// AccountTarget representa uma unidade de extração: um cliente e sua conta de anúncios
type AccountTarget struct {
	ClientName string `json:"client_name"`
	AccountID  string `json:"account_id"`
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`

	// Clients mapeia o nome de exibição do cliente para o ID da conta de anúncios
	Clients map[string]string `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
}

// Report controla a extração assíncrona e a saída do relatório consolidado
type Report struct {
	// ClientAccountMap é a lista "Nome=ID da conta" separada por vírgulas
	ClientAccountMap    string `mapstructure:"client_account_map"`
	LookbackDays        int    `mapstructure:"report_lookback_days"`
	PollIntervalSeconds int    `mapstructure:"report_poll_interval_seconds"`
	PageLimit           int    `mapstructure:"report_page_limit"`
	OutputPath          string `mapstructure:"report_output_path"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reports")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("CLIENT_ACCOUNT_MAP", "")
	viper.SetDefault("REPORT_LOOKBACK_DAYS", 7)         // última semana de dados
	viper.SetDefault("REPORT_POLL_INTERVAL_SECONDS", 5) // intervalo entre rodadas de polling
	viper.SetDefault("REPORT_PAGE_LIMIT", 2000)         // registros por página de resultado
	viper.SetDefault("REPORT_OUTPUT_PATH", "relatorio_consolidado_clientes.csv")

	viper.SetDefault("REPORT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Clients, err = ParseClientAccountMap(config.Report.ClientAccountMap)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParseClientAccountMap converte a lista "Nome=ID,Nome2=ID2" no mapa
// cliente → conta de anúncios usado pela extração
func ParseClientAccountMap(raw string) (map[string]string, error) {
	clients := make(map[string]string)

	if strings.TrimSpace(raw) == "" {
		return clients, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, accountID, found := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		accountID = strings.TrimSpace(accountID)

		if !found || name == "" || accountID == "" {
			return nil, errors.Errorf("entrada inválida no CLIENT_ACCOUNT_MAP: %q", entry)
		}

		clients[name] = accountID
	}

	return clients, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

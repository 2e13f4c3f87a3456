package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do CRM Family.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr string
	CacheTTL  time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting do login
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// CORS
	CORSOrigins []string

	// Envio de mensagens
	SMTP   SMTPConfig
	Twilio TwilioConfig
}

// SMTPConfig contém as credenciais do servidor de email.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Configured informa se há credenciais suficientes para envio real.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Password != ""
}

// TwilioConfig contém as credenciais da API do Twilio para WhatsApp.
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

// Configured informa se há credenciais suficientes para envio real.
func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != ""
}

// LoadConfig carrega as configurações do ambiente e encerra o processo se algo obrigatório faltar.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	return cfg
}

// Load carrega as configurações a partir das variáveis de ambiente.
func Load() (*Config, error) {
	dsn, err := databaseURL()
	if err != nil {
		return nil, err
	}

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || secret == "" {
		return nil, fmt.Errorf("a variável de ambiente JWT_SECRET deve ser definida")
	}

	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "3001"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados
		DatabaseURL: dsn,
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Cache
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getDurationEnv("CACHE_TTL_SEC", 60) * time.Second,

		// 4. Segurança (7 dias por padrão)
		JWTSecretKey: secret,
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_HOURS", 168) * time.Hour,

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 6. CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:3000")),

		// 7. Mensageria
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getIntEnv("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),
		},
		Twilio: TwilioConfig{
			AccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
			PhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		},
	}

	return cfg, nil
}

// DatabaseConfig é o subconjunto usado por ferramentas que só falam com o banco (migrações).
type DatabaseConfig struct {
	LogLevel    string
	DatabaseURL string
	DBTimeout   time.Duration
}

// LoadDatabase carrega apenas as configurações de banco e log. JWT_SECRET não é exigida.
func LoadDatabase() (*DatabaseConfig, error) {
	dsn, err := databaseURL()
	if err != nil {
		return nil, err
	}
	return &DatabaseConfig{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: dsn,
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,
	}, nil
}

// databaseURL usa DATABASE_URL quando definida; senão monta a DSN a partir de DB_HOST, DB_PORT, DB_NAME, DB_USER e DB_PASSWORD.
func databaseURL() (string, error) {
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		return dsn, nil
	}

	host := getEnv("DB_HOST", "")
	name := getEnv("DB_NAME", "")
	user := getEnv("DB_USER", "")
	if host == "" || name == "" || user == "" {
		return "", fmt.Errorf("defina DATABASE_URL ou DB_HOST, DB_NAME e DB_USER")
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, getEnv("DB_PASSWORD", "")),
		Host:     host + ":" + getEnv("DB_PORT", "5432"),
		Path:     "/" + name,
		RawQuery: "sslmode=" + getEnv("DB_SSLMODE", "disable"),
	}
	return u.String(), nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration (sem unidade).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string
	Server  ServerConfig
	AI      AIConfig
	Ledger  LedgerConfig
	Payment PaymentConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type AIConfig struct {
	Provider           string
	APIKey             string
	BaseURL            string
	Model              string
	Timeout            time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
	MaxOutputTokens    int
	AdviceTemperature  float64
}

type LedgerConfig struct {
	DefaultEventType      string
	DefaultGuestCount     int
	DiscardStaleEstimates bool
	MaxSessions           int
}

type PaymentConfig struct {
	Delay          time.Duration
	DepositPercent float64
	Decline        bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return cfg, err
	}

	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}

	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return cfg, err
	}

	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	shutdownTimeout, err := parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:            getEnv("SERVER_HOST", "0.0.0.0"),
		Port:            serverPort,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	aiTimeout, err := parseDurationEnv("AI_TIMEOUT", 20*time.Second)
	if err != nil {
		return cfg, err
	}

	aiRateLimitPerMinute, err := parseIntEnv("AI_RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return cfg, err
	}

	aiRateLimitBurst, err := parseIntEnv("AI_RATE_LIMIT_BURST", 10)
	if err != nil {
		return cfg, err
	}

	aiMaxOutputTokens, err := parseIntEnv("AI_MAX_OUTPUT_TOKENS", 4096)
	if err != nil {
		return cfg, err
	}

	adviceTemperature, err := parseFloatEnv("AI_ADVICE_TEMPERATURE", 0.7)
	if err != nil {
		return cfg, err
	}

	aiProvider := strings.ToLower(getEnv("AI_PROVIDER", "gemini"))
	defaultBaseURL := "https://api.groq.com/openai/v1"
	defaultModel := "llama-3.1-8b-instant"
	if aiProvider == "gemini" {
		defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
		defaultModel = "gemini-1.5-flash"
	}

	aiAPIKey := getEnv("AI_API_KEY", "")
	if aiAPIKey == "" && aiProvider == "gemini" {
		aiAPIKey = getEnv("GEMINI_API_KEY", "")
	}

	cfg.AI = AIConfig{
		Provider:           aiProvider,
		APIKey:             aiAPIKey,
		BaseURL:            getEnv("AI_BASE_URL", defaultBaseURL),
		Model:              getEnv("AI_MODEL", defaultModel),
		Timeout:            aiTimeout,
		RateLimitPerMinute: aiRateLimitPerMinute,
		RateLimitBurst:     aiRateLimitBurst,
		MaxOutputTokens:    aiMaxOutputTokens,
		AdviceTemperature:  adviceTemperature,
	}

	defaultGuests, err := parseIntEnv("LEDGER_DEFAULT_GUEST_COUNT", 100)
	if err != nil {
		return cfg, err
	}

	maxSessions, err := parseIntEnv("LEDGER_MAX_SESSIONS", 1000)
	if err != nil {
		return cfg, err
	}

	discardStale, err := parseBoolEnv("LEDGER_DISCARD_STALE_ESTIMATES", false)
	if err != nil {
		return cfg, err
	}

	cfg.Ledger = LedgerConfig{
		DefaultEventType:      strings.TrimSpace(getEnv("LEDGER_DEFAULT_EVENT_TYPE", "Wedding")),
		DefaultGuestCount:     defaultGuests,
		DiscardStaleEstimates: discardStale,
		MaxSessions:           maxSessions,
	}

	paymentDelay, err := parseDurationEnv("PAYMENT_DELAY", 1500*time.Millisecond)
	if err != nil {
		return cfg, err
	}

	depositPercent, err := parseFloatEnv("PAYMENT_DEPOSIT_PERCENT", 10)
	if err != nil {
		return cfg, err
	}

	decline, err := parseBoolEnv("PAYMENT_DECLINE", false)
	if err != nil {
		return cfg, err
	}

	cfg.Payment = PaymentConfig{
		Delay:          paymentDelay,
		DepositPercent: depositPercent,
		Decline:        decline,
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: parseCSVEnv("CORS_ALLOWED_ORIGINS"),
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Addr возвращает адрес, на котором слушает HTTP-сервер.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be greater than 0")
	}

	switch c.AI.Provider {
	case "gemini", "groq":
	default:
		return fmt.Errorf("AI_PROVIDER must be gemini or groq, got %q", c.AI.Provider)
	}

	if c.AI.RateLimitPerMinute <= 0 {
		return fmt.Errorf("AI_RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.AI.RateLimitBurst <= 0 {
		return fmt.Errorf("AI_RATE_LIMIT_BURST must be greater than 0")
	}

	if c.AI.MaxOutputTokens <= 0 {
		return fmt.Errorf("AI_MAX_OUTPUT_TOKENS must be greater than 0")
	}

	if c.AI.AdviceTemperature > 2 {
		return fmt.Errorf("AI_ADVICE_TEMPERATURE must not exceed 2")
	}

	if c.Ledger.DefaultEventType == "" {
		return fmt.Errorf("LEDGER_DEFAULT_EVENT_TYPE is required")
	}

	if c.Payment.DepositPercent > 100 {
		return fmt.Errorf("PAYMENT_DEPOSIT_PERCENT must not exceed 100")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}

	if parsed <= 0 || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseCSVEnv(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	RedisURL       string
	OpenAIKey      string
	OpenAIModel    string
	MetricsPort    string
	BaseURL        string
	Markets        []string
	Categories     []string
	WorkerCount    int
	ScrapeWorkers  int
	FetchInterval  time.Duration
	HTTPTimeout    time.Duration
	EnrichCacheTTL time.Duration
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:    databaseURL(),
		RedisURL:       os.Getenv("REDIS_URL"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		BaseURL:        strings.TrimRight(getEnv("BASE_URL", "https://super.facua.org"), "/"),
		Markets:        splitList(getEnv("MARKETS", "mercadona,carrefour,dia,alcampo,eroski,hipercor")),
		Categories:     splitList(getEnv("CATEGORIES", "leche,aceite-de-oliva,aceite-de-girasol")),
		WorkerCount:    getInt("WORKER_COUNT", 5),
		ScrapeWorkers:  getInt("SCRAPE_WORKERS", 1), // 1 = sequencial
		FetchInterval:  getDuration("FETCH_INTERVAL", 0),
		HTTPTimeout:    getDuration("HTTP_TIMEOUT", 0), // 0 = sem timeout, usa o padrão do transport
		EnrichCacheTTL: getDuration("ENRICH_CACHE_TTL", 720*time.Hour),
	}
}

// databaseURL usa DATABASE_URL se existir; senão monta a URL a partir de DB_HOST, DB_PORT etc.
func databaseURL() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("DB_USER", "my_user"), os.Getenv("DB_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:   "/" + getEnv("DB_NAME", "supermarkets"),
	}
	q := u.Query()
	q.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getInt(k string, d int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func getDuration(k string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return d
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config reúne os parâmetros de execução do serviço, com os valores locais de
// desenvolvimento como padrão.
type Config struct {
	HTTPAddr           string        `env:"EVENTING_HTTP_ADDR"           envDefault:":8080"`
	MetricsAddr        string        `env:"EVENTING_METRICS_ADDR"        envDefault:":9091"`
	DatabaseDSN        string        `env:"EVENTING_DATABASE_DSN"        envDefault:"host=localhost user=myuser password=mypassword dbname=mydb port=5432 sslmode=disable TimeZone=UTC"`
	RedisAddr          string        `env:"EVENTING_REDIS_ADDR"          envDefault:"localhost:6379"`
	CacheTTL           time.Duration `env:"EVENTING_CACHE_TTL"           envDefault:"10m"`
	ConcurrentDispatch bool          `env:"EVENTING_CONCURRENT_DISPATCH" envDefault:"true"`
	ShutdownTimeout    time.Duration `env:"EVENTING_SHUTDOWN_TIMEOUT"    envDefault:"5s"`
}

// Load carrega a configuração das variáveis de ambiente.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"

	"github.com/3lvia/problemdetails/internal/runtime"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
)

type Config struct {
	Env       runtime.Env
	VaultAddr string
	NatsAddr  string
	ApiAddr   string

	// InstanceBase prefixes the URNs identifying problem occurrences, as in urn:<base>:<uuid>.
	InstanceBase string
}

func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Env:          runtime.Env(get("ENVIRONMENT", string(runtime.Production))),
		VaultAddr:    get("VAULT_ADDR", ""),
		NatsAddr:     get("NATS_ADDR", nats.DefaultURL),
		ApiAddr:      get("API_ADDR", ":8080"),
		InstanceBase: get("INSTANCE_BASE", "req"),
	}

	if !cfg.Env.Valid() {
		return nil, fmt.Errorf("invalid environment %q", cfg.Env)
	}

	if cfg.InstanceBase == "" {
		return nil, fmt.Errorf("missing environment variable %s", "INSTANCE_BASE")
	}

	return cfg, nil
}

func get(name string, alt string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return alt
	}
	return v
}

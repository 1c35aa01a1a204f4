package config

import (
	"context"
	"log/slog"

	"github.com/3lvia/libraries-go/pkg/hashivault"
	"github.com/nats-io/nats.go"
)

// NatsSecretPath is where the NATS token of the service is kept in vault.
const NatsSecretPath = "ice/kv/data/widgets/nats"

type Secrets struct {
	NatsToken string
}

// NatsOptions returns the connection options carrying the secrets, if any.
func (s *Secrets) NatsOptions() []nats.Option {
	if s == nil || s.NatsToken == "" {
		return nil
	}
	return []nats.Option{nats.Token(s.NatsToken)}
}

// LoadSecrets reads the service secrets from vault.
// Without a vault address the service runs with empty secrets.
func LoadSecrets(ctx context.Context, cfg *Config) (*Secrets, error) {
	if cfg.VaultAddr == "" {
		slog.InfoContext(ctx, "no vault addr set, running without secrets")
		return &Secrets{}, nil
	}

	slog.InfoContext(ctx, "loading secrets from vault", "vault_addr", cfg.VaultAddr)

	vault, errChan, err := hashivault.New(ctx, hashivault.WithOIDC())
	if err != nil {
		return nil, err
	}

	go func(ec <-chan error) {
		for err := range ec {
			slog.ErrorContext(ctx, "vault error", "error", err)
		}
	}(errChan)

	return readSecrets(ctx, vault)
}

func readSecrets(ctx context.Context, vault hashivault.SecretsManager) (*Secrets, error) {
	natsToken, err := vault.GetStaticSecretAtKey(ctx, NatsSecretPath, "token")
	if err != nil {
		return nil, err
	}

	return &Secrets{
		NatsToken: natsToken,
	}, nil
}

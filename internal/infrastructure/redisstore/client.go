// Package redisstore agrupa los adaptadores sobre Redis: almacén de refresh
// tokens para sesiones y limitador de tasa para los endpoints de autenticación.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andinosoft/erp-pyme/pkg/config"
)

// NewClient crea y verifica (PING) un cliente Redis desde la configuración.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectando a redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

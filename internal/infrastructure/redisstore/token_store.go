package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andinosoft/erp-pyme/internal/application/auth"
	"github.com/andinosoft/erp-pyme/internal/domain"
)

var _ auth.TokenStore = (*TokenStore)(nil)

// TokenStore guarda refresh tokens en Redis con expiración. La clave es el
// token opaco y el valor el ID del usuario; la rotación borra el token usado.
type TokenStore struct {
	client *redis.Client
	prefix string
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client, prefix: "refresh:"}
}

func (s *TokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("guardando refresh token: %w", err)
	}
	return nil
}

// Get devuelve el ID de usuario dueño del token, o ErrUnauthorized si el
// token no existe o ya expiró.
func (s *TokenStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("leyendo refresh token: %w", err)
	}
	return userID, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.prefix+token).Err(); err != nil {
		return fmt.Errorf("borrando refresh token: %w", err)
	}
	return nil
}

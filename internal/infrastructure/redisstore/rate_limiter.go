package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter es un limitador de ventana fija sobre Redis. Cada clave
// (ej. "login:1.2.3.4") tiene un contador por ventana; el script Lua hace la
// lectura y el incremento de forma atómica.
type RateLimiter struct {
	client *redis.Client
	prefix string
	limite int64
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limite int64, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, prefix: "ratelimit:", limite: limite, window: window}
}

const ventanaFijaScript = `
local key = KEYS[1]
local limite = tonumber(ARGV[1])
local ventana = tonumber(ARGV[2])
local ahora = tonumber(ARGV[3])

local inicio = math.floor(ahora / ventana) * ventana
local window_key = key .. ":" .. inicio

local actual = tonumber(redis.call('GET', window_key) or 0)
if actual + 1 > limite then
    local retry = inicio + ventana - ahora
    return {0, retry}
end

redis.call('INCR', window_key)
redis.call('EXPIRE', window_key, ventana)
return {1, 0}
`

// Allow indica si la petición pasa el límite; cuando no pasa devuelve cuántos
// segundos faltan para la siguiente ventana.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	result, err := rl.client.Eval(ctx, ventanaFijaScript,
		[]string{rl.prefix + key},
		rl.limite,
		int64(rl.window.Seconds()),
		time.Now().Unix(),
	).Result()
	if err != nil {
		return false, 0, fmt.Errorf("evaluando limite de tasa: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return false, 0, fmt.Errorf("respuesta inesperada del script de limite")
	}
	allowed := values[0].(int64) == 1
	retryAfter := time.Duration(values[1].(int64)) * time.Second
	return allowed, retryAfter, nil
}

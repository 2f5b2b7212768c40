package enrich

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"superprecos/internal/config"
	"superprecos/internal/model"
)

const keyPrefix = "enrich:"

// Cache guarda atributos já extraídos, para não pagar a chamada ao modelo duas vezes.
type Cache interface {
	Get(ctx context.Context, name string) (model.EnrichedAttributes, bool)
	Set(ctx context.Context, name string, attrs model.EnrichedAttributes) error
}

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *RedisCache) Get(ctx context.Context, name string) (model.EnrichedAttributes, bool) {
	val, err := c.Client.Get(ctx, keyPrefix+name).Result()
	if err != nil {
		return model.EnrichedAttributes{}, false
	}

	var attrs model.EnrichedAttributes
	if err := json.Unmarshal([]byte(val), &attrs); err != nil {
		return model.EnrichedAttributes{}, false
	}
	return attrs, true
}

func (c *RedisCache) Set(ctx context.Context, name string, attrs model.EnrichedAttributes) error {
	b, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, keyPrefix+name, b, c.TTL).Err()
}

// FromConfig monta o adaptador com o cliente OpenAI e, se REDIS_URL estiver definida, o cache no Redis.
func FromConfig(cfg *config.Config) *Adapter {
	var cache Cache
	if cfg.RedisURL != "" {
		cache = &RedisCache{
			Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL}),
			TTL:    cfg.EnrichCacheTTL,
		}
	}
	return NewAdapter(openai.NewClient(cfg.OpenAIKey), cfg.OpenAIModel, cache)
}

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

// Cache stores unfiltered search results per criteria. Filters are applied
// after the cache, so one entry serves every filter combination.
type Cache interface {
	Get(ctx context.Context, criteria models.SearchCriteria) ([]models.FlightOffer, bool)
	Set(ctx context.Context, criteria models.SearchCriteria, offers []models.FlightOffer) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

// NewRedisClient connects and pings. The client is shared by the search
// cache and the session store.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, criteria models.SearchCriteria) ([]models.FlightOffer, bool) {
	key := generateKey(criteria)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []models.FlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}

	return offers, true
}

func (c *RedisCache) Set(ctx context.Context, criteria models.SearchCriteria, offers []models.FlightOffer) error {
	key := generateKey(criteria)

	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, criteria models.SearchCriteria) ([]models.FlightOffer, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, criteria models.SearchCriteria, offers []models.FlightOffer) error {
	return nil
}

// Passenger count does not change which offers match, so it is left out of
// the key.
func generateKey(criteria models.SearchCriteria) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		FareClass     string
	}{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		FareClass:     string(criteria.FareClass),
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "flight:" + hex.EncodeToString(hash[:])
}

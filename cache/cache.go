package cache

import (
	"context"
	"log"
	"time"

	"github.com/SNAndreatta/prode-master/config"

	"github.com/redis/go-redis/v9"
)

// Client is the global Valkey client. Valkey speaks the Redis protocol, so
// the standard go-redis client is used. The cache is a read-through layer
// for fixture listings only; lock checks and scoring always read Postgres.
var Client *redis.Client

// Connect initializes the Valkey connection. A failed ping disables the
// cache instead of aborting startup.
func Connect() {
	Client = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.ValkeyAddr,
		Password: config.AppConfig.ValkeyPassword,
		DB:       config.AppConfig.ValkeyDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("[CACHE] Valkey unreachable at %s, running without cache: %v", config.AppConfig.ValkeyAddr, err)
		Client = nil
		return
	}

	log.Printf("[CACHE] Connected to Valkey at %s", config.AppConfig.ValkeyAddr)
}

// Available reports whether the cache can be used.
func Available() bool {
	return Client != nil
}

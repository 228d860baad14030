package initializers

import (
	"log"

	"github.com/Kariqs/storefront-api/cache"
)

var Cache cache.Store

// ConnectToCache uses Redis when REDIS_URL is set and an in-process cache
// otherwise.
func ConnectToCache() {
	if Env.RedisURL == "" {
		Cache = cache.NewMemoryStore()
		log.Println("Using in-memory page cache.")
		return
	}

	store, err := cache.NewRedisStore(Env.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}
	Cache = store
	log.Println("Using redis page cache.")
}

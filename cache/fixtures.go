package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/SNAndreatta/prode-master/models"

	"github.com/redis/go-redis/v9"
)

// fixtureListTTL bounds staleness of cached listings; the daily sync
// rewrites fixtures well inside this window anyway.
const fixtureListTTL = 10 * time.Minute

func fixtureListKey(leagueID uint, round string) string {
	return fmt.Sprintf("fixtures:%d:%s", leagueID, round)
}

// GetFixtureList returns the cached fixture listing for a league round, or
// (nil, false) on a miss. Cache errors degrade to a miss.
func GetFixtureList(ctx context.Context, leagueID uint, round string) ([]models.Fixture, bool) {
	if !Available() {
		return nil, false
	}

	payload, err := Client.Get(ctx, fixtureListKey(leagueID, round)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[CACHE] Error reading fixture list for league %d round %q: %v", leagueID, round, err)
		return nil, false
	}

	var fixtures []models.Fixture
	if err := json.Unmarshal([]byte(payload), &fixtures); err != nil {
		log.Printf("[CACHE] Corrupt fixture list for league %d round %q: %v", leagueID, round, err)
		return nil, false
	}
	return fixtures, true
}

// SetFixtureList stores a fixture listing under its league+round key.
func SetFixtureList(ctx context.Context, leagueID uint, round string, fixtures []models.Fixture) {
	if !Available() {
		return
	}

	payload, err := json.Marshal(fixtures)
	if err != nil {
		log.Printf("[CACHE] Error serializing fixture list for league %d round %q: %v", leagueID, round, err)
		return
	}

	if err := Client.Set(ctx, fixtureListKey(leagueID, round), payload, fixtureListTTL).Err(); err != nil {
		log.Printf("[CACHE] Error writing fixture list for league %d round %q: %v", leagueID, round, err)
	}
}

// InvalidateLeague drops all cached listings for a league after a sync pass.
func InvalidateLeague(ctx context.Context, leagueID uint) {
	if !Available() {
		return
	}

	pattern := fmt.Sprintf("fixtures:%d:*", leagueID)
	iter := Client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := Client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[CACHE] Error invalidating key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[CACHE] Error scanning keys for league %d: %v", leagueID, err)
	}
}

package constants

import "time"

// Cache key prefixes. All keys live under the stagepass namespace so that
// DeletePattern calls cannot touch foreign keys on a shared Redis.
const (
	CACHE_KEY_EVENT_DETAIL  = "stagepass:events:detail:"
	CACHE_KEY_EVENT_PENDING = "stagepass:events:pending"
	CACHE_KEY_SCENERY_LIST  = "stagepass:sceneries:all"
	CACHE_KEY_SCENERY_ITEM  = "stagepass:sceneries:detail:"

	PATTERN_INVALIDATE_EVENT_ALL   = "stagepass:events:*"
	PATTERN_INVALIDATE_SCENERY_ALL = "stagepass:sceneries:*"
)

// TTLs for cached reads
const (
	TTL_EVENT_DETAIL = 10 * time.Minute
	TTL_EVENT_LIST   = 2 * time.Minute
	TTL_SCENERY_LIST = 5 * time.Minute
)

// BuildEventDetailKey builds the cache key for a single event
func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

// BuildSceneryDetailKey builds the cache key for a single scenery
func BuildSceneryDetailKey(sceneryID string) string {
	return CACHE_KEY_SCENERY_ITEM + sceneryID
}

package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the arena platform
// Pattern: arenas:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_SHORT = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for arena details
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for schedules
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute // 5 minutes - for month availability
	TTL_DYNAMIC_QUICK = 2 * time.Minute // 2 minutes - for location searches
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	TTL_REALTIME_SHORT = 30 * time.Second // 30 seconds - for day availability vectors
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "arenas"
)

// ================== ARENAS MODULE ==================

const (
	// Location searches; coordinates are rounded before keying so nearby
	// callers share entries
	CACHE_KEY_ARENA_SEARCH = CACHE_PREFIX + ":arenas:search" // + :lat:X:lon:Y:input:Z
	CACHE_KEY_ARENA_NEARBY = CACHE_PREFIX + ":arenas:nearby" // + :lat:X:lon:Y

	// Individual arena details
	CACHE_KEY_ARENA_DETAIL = CACHE_PREFIX + ":arenas:detail:uuid:" // + arena-id
)

const (
	TTL_ARENA_SEARCH = TTL_DYNAMIC_QUICK      // 2 minutes
	TTL_ARENA_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== RESERVATIONS MODULE ==================

const (
	// Day availability (arena + courts + slot vectors). Staleness is
	// tolerated: a slot may show available and be taken at admission time.
	CACHE_KEY_DAY_AVAILABILITY   = CACHE_PREFIX + ":reservations:day"   // + :date:X:lat:Y:lon:Z
	CACHE_KEY_MONTH_AVAILABILITY = CACHE_PREFIX + ":reservations:month" // + :arena:X:year:Y:month:Z
)

const (
	TTL_DAY_AVAILABILITY   = TTL_REALTIME_SHORT // 30 seconds
	TTL_MONTH_AVAILABILITY = TTL_DYNAMIC_SHORT  // 5 minutes
)

// ================== AUTH MODULE ==================

const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== HELPER FUNCTIONS ==================

func BuildArenaSearchKey(lat, lon float64, input string) string {
	return fmt.Sprintf("%s:lat:%.3f:lon:%.3f:input:%s", CACHE_KEY_ARENA_SEARCH, lat, lon, input)
}

func BuildArenaNearbyKey(lat, lon float64) string {
	return fmt.Sprintf("%s:lat:%.3f:lon:%.3f", CACHE_KEY_ARENA_NEARBY, lat, lon)
}

func BuildDayAvailabilityKey(date string, lat, lon float64, onlyAvailable bool, arenaID, sort string) string {
	return fmt.Sprintf("%s:date:%s:lat:%.3f:lon:%.3f:only:%t:arena:%s:sort:%s",
		CACHE_KEY_DAY_AVAILABILITY, date, lat, lon, onlyAvailable, arenaID, sort)
}

func BuildMonthAvailabilityKey(arenaID string, year, month int) string {
	return fmt.Sprintf("%s:arena:%s:year:%d:month:%d", CACHE_KEY_MONTH_AVAILABILITY, arenaID, year, month)
}

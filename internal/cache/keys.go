package cache

import "strings"

const (
	GlobalKeyPrefix = "interviewai"
	// GlobalLeaderboard is the identifier of the leaderboard across all skills
	GlobalLeaderboard = "all"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SkillSlug normalises a skill name for use inside a key ("System Design" -> "system-design")
func SkillSlug(skill string) string {
	slug := strings.ToLower(strings.TrimSpace(skill))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		return GlobalLeaderboard
	}
	return slug
}

// LeaderboardKey is the sorted set holding best averages for skill.
// An empty skill selects the global leaderboard.
func LeaderboardKey(skill string) string {
	return GenerateCacheKey("interview", "leaderboard", SkillSlug(skill))
}

// UserNamesKey is the hash mapping user IDs to display names
func UserNamesKey() string {
	return GenerateCacheKey("interview", "usernames", GlobalLeaderboard)
}

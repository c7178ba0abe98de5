package adapter

import (
	"context"
	"fmt"

	"interview-ai/internal/cache"
	"interview-ai/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// RedisLeaderboardAdapter implements domain.Leaderboard with Redis sorted sets.
// Each skill has its own set plus one global set; the score is the user's best average.
type RedisLeaderboardAdapter struct {
	client *redis.Client
}

// NewRedisLeaderboardAdapter expects a connected *redis.Client.
func NewRedisLeaderboardAdapter(client *redis.Client) domain.Leaderboard {
	return &RedisLeaderboardAdapter{client: client}
}

// Record raises the user's score on the skill and global boards. Lower scores are ignored.
func (r *RedisLeaderboardAdapter) Record(ctx context.Context, skill, userID, userName string, avgScore float64) error {
	member := redis.Z{Score: avgScore, Member: userID}

	keys := []string{cache.LeaderboardKey(skill)}
	if global := cache.LeaderboardKey(""); global != keys[0] {
		keys = append(keys, global)
	}
	for _, key := range keys {
		// GT only updates existing members when the new score is greater
		if err := r.client.ZAddArgs(ctx, key, redis.ZAddArgs{GT: true, Members: []redis.Z{member}}).Err(); err != nil {
			return fmt.Errorf("failed to record leaderboard score in %s: %w", key, err)
		}
	}

	if userName != "" {
		if err := r.client.HSet(ctx, cache.UserNamesKey(), userID, userName).Err(); err != nil {
			return fmt.Errorf("failed to store leaderboard user name: %w", err)
		}
	}
	return nil
}

// Top returns the best entries of a board. An empty skill selects the global board.
func (r *RedisLeaderboardAdapter) Top(ctx context.Context, skill string, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	ranked, err := r.client.ZRevRangeWithScores(ctx, cache.LeaderboardKey(skill), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	if len(ranked) == 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	userIDs := make([]string, len(ranked))
	for i, z := range ranked {
		userIDs[i] = fmt.Sprint(z.Member)
	}

	names, err := r.client.HMGet(ctx, cache.UserNamesKey(), userIDs...).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read leaderboard user names: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, len(ranked))
	for i, z := range ranked {
		entries[i] = domain.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   userIDs[i],
			AvgScore: z.Score,
		}
		if i < len(names) {
			if name, ok := names[i].(string); ok {
				entries[i].UserName = name
			}
		}
	}
	return entries, nil
}

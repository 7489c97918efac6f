package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dinakaran-k/portfolio-api/internal/domain/preference"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
)

const themeKey = "portfolio:preferences:theme"

type redisPreferenceStore struct {
	client *redis.Client
}

func NewRedisPreferenceStore(client *redis.Client) preference.Store {
	return &redisPreferenceStore{client: client}
}

func (s *redisPreferenceStore) GetTheme(ctx context.Context) (preference.Theme, error) {
	val, err := s.client.Get(ctx, themeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", apperror.NewInternal("failed to read theme preference", err)
	}

	theme, err := preference.ParseTheme(val)
	if err != nil {
		// A corrupted value behaves like an unset one.
		return "", nil
	}
	return theme, nil
}

func (s *redisPreferenceStore) SetTheme(ctx context.Context, t preference.Theme) error {
	if err := s.client.Set(ctx, themeKey, string(t), 0).Err(); err != nil {
		return apperror.NewInternal("failed to store theme preference", err)
	}
	return nil
}

package language

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	vocabularyCacheKey = "languages:vocabulary"
	vocabularyCacheTTL = 12 * time.Hour
)

// Service handles language vocabulary and per-user ability logic
type Service struct {
	repo  Repository
	redis *redis.Client // nil if Redis disabled
}

// NewService creates language service
func NewService(repo Repository, redisClient *redis.Client) *Service {
	return &Service{
		repo:  repo,
		redis: redisClient,
	}
}

// UpsertAbility inserts or updates the caller's fluency for a language.
// Unknown fluency values and unknown language codes are rejected before
// any persistence attempt.
func (s *Service) UpsertAbility(ctx context.Context, userID int64, code string, fluency Fluency) (*LanguageAbility, error) {
	if !fluency.Valid() {
		return nil, ErrInvalidFluency
	}

	lang, err := s.repo.GetLanguage(ctx, code)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, ErrUnknownLanguage
	}

	ability := &LanguageAbility{
		UserID:       userID,
		LanguageCode: lang.Code,
		Fluency:      fluency,
	}

	if err := s.repo.UpsertAbility(ctx, ability); err != nil {
		return nil, err
	}

	return ability, nil
}

// RemoveAbility deletes the caller's ability row for a language.
// Removing an absent ability succeeds.
func (s *Service) RemoveAbility(ctx context.Context, userID int64, code string) error {
	return s.repo.RemoveAbility(ctx, userID, code)
}

// ListAbilities returns the caller's language abilities in no particular
// order; callers sort by fluency rank if they need to
func (s *Service) ListAbilities(ctx context.Context, userID int64) ([]*LanguageAbility, error) {
	return s.repo.ListAbilities(ctx, userID)
}

// ListLanguages returns the reference vocabulary, served from a Redis
// cache when available (the vocabulary changes rarely)
func (s *Service) ListLanguages(ctx context.Context) ([]*Language, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, vocabularyCacheKey).Result()
		if err == nil {
			var languages []*Language
			if err := json.Unmarshal([]byte(cached), &languages); err == nil {
				return languages, nil
			}
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("Language vocabulary cache read failed")
		}
	}

	languages, err := s.repo.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(languages); err == nil {
			if err := s.redis.Set(ctx, vocabularyCacheKey, data, vocabularyCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("Language vocabulary cache write failed")
			}
		}
	}

	return languages, nil
}

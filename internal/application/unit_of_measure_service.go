package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
	"github.com/oksasatya/recipe-app/pkg/helpers"
)

const uomCacheKey = "uom:all"

type UnitOfMeasureService struct {
	Repo      repo.UnitOfMeasureRepository
	Converter *converter.UnitOfMeasureToCommand
	Redis     *redis.Client
	CacheTTL  time.Duration
	Logger    *logrus.Logger
}

func NewUnitOfMeasureService(units repo.UnitOfMeasureRepository, conv *converter.UnitOfMeasureToCommand, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *UnitOfMeasureService {
	return &UnitOfMeasureService{Repo: units, Converter: conv, Redis: rdb, CacheTTL: ttl, Logger: logger}
}

// ListAllUoms returns every unit of measure, served from Redis when cached.
// Redis failures fall through to the database.
func (s *UnitOfMeasureService) ListAllUoms(ctx context.Context) ([]*command.UnitOfMeasureCommand, error) {
	if s.Redis != nil {
		var cached []*command.UnitOfMeasureCommand
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, uomCacheKey, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", uomCacheKey).Warn("redis get failed")
		}
		if ok {
			return cached, nil
		}
	}

	units, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*command.UnitOfMeasureCommand, 0, len(units))
	for _, u := range units {
		if c := s.Converter.Convert(u); c != nil {
			out = append(out, c)
		}
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, uomCacheKey, out, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", uomCacheKey).Warn("redis set failed")
		}
	}
	return out, nil
}

// InvalidateCache drops the cached unit list. The seed command calls it after writing units.
func (s *UnitOfMeasureService) InvalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, uomCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", uomCacheKey).Warn("redis del failed")
	}
}

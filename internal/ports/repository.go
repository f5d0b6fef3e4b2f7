package ports

import (
	"context"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type ModelCacheRepository interface {
	Save(ctx context.Context, models []domain.ModelInfo) error
	List(ctx context.Context) ([]domain.ModelInfo, error)
}

package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/quasarbright/clanker-translate/internal/domain"
	"github.com/quasarbright/clanker-translate/internal/ports"
)

// ModelsAPI exposes the gateway model catalog and API-key validation.
type ModelsAPI struct {
	gw    ports.Gateway
	cache ports.ModelCacheRepository
	log   *logrus.Logger
}

func NewModelsAPI(gw ports.Gateway, cache ports.ModelCacheRepository, log *logrus.Logger) *ModelsAPI {
	return &ModelsAPI{gw: gw, cache: cache, log: log}
}

// List fetches the catalog from the gateway and refreshes the local cache.
func (a *ModelsAPI) List(apiKey string) ([]domain.ModelInfo, error) {
	ctx := context.Background()
	models, err := a.gw.ListModels(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if err := a.cache.Save(ctx, models); err != nil {
		a.log.WithError(err).Warn("model cache save failed")
	}
	return models, nil
}

// ListCached returns the last fetched catalog without touching the network.
func (a *ModelsAPI) ListCached() ([]domain.ModelInfo, error) {
	return a.cache.List(context.Background())
}

// ValidateKey reports whether the gateway accepts the key. A definite
// rejection yields (false, nil); transport problems come back as errors so
// the frontend can tell "bad key" from "no network".
func (a *ModelsAPI) ValidateKey(apiKey string) (bool, error) {
	err := a.gw.ValidateKey(context.Background(), apiKey)
	if err == nil {
		return true, nil
	}
	if cerr, ok := err.(*domain.ClassifiedError); ok && cerr.Kind == domain.ErrAuth {
		return false, nil
	}
	return false, err
}

package app

import (
	"context"
	"io"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/sirupsen/logrus"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

type fakeGateway struct {
	models      []domain.ModelInfo
	validateErr error
}

func (g *fakeGateway) Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResponse, error) {
	return domain.TranslationResponse{}, nil
}

func (g *fakeGateway) ListModels(ctx context.Context, apiKey string) ([]domain.ModelInfo, error) {
	if g.validateErr != nil {
		return nil, g.validateErr
	}
	return g.models, nil
}

func (g *fakeGateway) ValidateKey(ctx context.Context, apiKey string) error { return g.validateErr }

type memModelCache struct {
	saved []domain.ModelInfo
}

func (c *memModelCache) Save(ctx context.Context, models []domain.ModelInfo) error {
	c.saved = models
	return nil
}

func (c *memModelCache) List(ctx context.Context) ([]domain.ModelInfo, error) {
	return c.saved, nil
}

func discardLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestModelsListRefreshesCache(t *testing.T) {
	catalog := []domain.ModelInfo{{ID: "openai/gpt-4o", Name: "GPT-4o"}}
	cache := &memModelCache{}
	api := NewModelsAPI(&fakeGateway{models: catalog}, cache, discardLog())

	got, err := api.List("key")
	assert.Equal(t, nil, err)
	assert.Equal(t, catalog, got)
	assert.Equal(t, catalog, cache.saved)

	cached, err := api.ListCached()
	assert.Equal(t, nil, err)
	assert.Equal(t, catalog, cached)
}

func TestValidateKeyOutcomes(t *testing.T) {
	okAPI := NewModelsAPI(&fakeGateway{}, &memModelCache{}, discardLog())
	valid, err := okAPI.ValidateKey("key")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, valid)

	rejectedAPI := NewModelsAPI(&fakeGateway{validateErr: domain.NewClassifiedError(domain.ErrAuth, "denied")}, &memModelCache{}, discardLog())
	valid, err = rejectedAPI.ValidateKey("key")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, valid)

	downAPI := NewModelsAPI(&fakeGateway{validateErr: domain.NewClassifiedError(domain.ErrNetwork, "no route")}, &memModelCache{}, discardLog())
	_, err = downAPI.ValidateKey("key")
	assert.NotEqual(t, nil, err)
}

package app

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quasarbright/clanker-translate/internal/ports"
)

const (
	keyAPIKey       = "api_key"
	keyModel        = "model"
	keyFromLanguage = "from_language"
	keyToLanguage   = "to_language"
)

// DefaultLanguagePair is what the picker shows before the user has chosen.
var DefaultLanguagePair = LanguagePair{From: "auto", To: "en"}

type LanguagePair struct {
	From string `json:"fromLanguage"`
	To   string `json:"toLanguage"`
}

// SettingsAPI is the Wails-bound preference store: API key, selected model
// and language pair.
type SettingsAPI struct {
	repo ports.SettingsRepository
}

func NewSettingsAPI(repo ports.SettingsRepository) *SettingsAPI { return &SettingsAPI{repo: repo} }

func (a *SettingsAPI) get(key string) (string, error) {
	v, err := a.repo.Get(context.Background(), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

func (a *SettingsAPI) GetAPIKey() (string, error) { return a.get(keyAPIKey) }

func (a *SettingsAPI) SetAPIKey(key string) error {
	return a.repo.Set(context.Background(), keyAPIKey, key)
}

func (a *SettingsAPI) ClearAPIKey() error {
	return a.repo.Delete(context.Background(), keyAPIKey)
}

func (a *SettingsAPI) GetModel() (string, error) { return a.get(keyModel) }

func (a *SettingsAPI) SetModel(model string) error {
	return a.repo.Set(context.Background(), keyModel, model)
}

// GetLanguagePair returns the stored preference, falling back to the default
// pair when either half is missing or empty.
func (a *SettingsAPI) GetLanguagePair() (LanguagePair, error) {
	from, err := a.get(keyFromLanguage)
	if err != nil {
		return DefaultLanguagePair, err
	}
	to, err := a.get(keyToLanguage)
	if err != nil {
		return DefaultLanguagePair, err
	}
	if from == "" || to == "" {
		return DefaultLanguagePair, nil
	}
	return LanguagePair{From: from, To: to}, nil
}

func (a *SettingsAPI) SetLanguagePair(p LanguagePair) error {
	ctx := context.Background()
	if err := a.repo.Set(ctx, keyFromLanguage, p.From); err != nil {
		return err
	}
	return a.repo.Set(ctx, keyToLanguage, p.To)
}

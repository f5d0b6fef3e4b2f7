package main

import (
	"context"
	"sort"

	"github.com/quasarbright/clanker-translate/internal/langs"
)

// App struct
type App struct {
	ctx context.Context
}

func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

type LanguageOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages returns the pickable language list for the frontend, sorted by
// display name, with the auto-detect sentinel first.
func (a *App) Languages() []LanguageOption {
	codes := langs.Codes()
	opts := make([]LanguageOption, 0, len(codes))
	for _, c := range codes {
		opts = append(opts, LanguageOption{Code: c, Name: langs.Name(c)})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Name < opts[j].Name })
	return append([]LanguageOption{{Code: langs.Auto, Name: "Detect language"}}, opts...)
}

package main

import (
	"embed"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	dbsqlite "github.com/quasarbright/clanker-translate/internal/adapters/db/sqlite"
	"github.com/quasarbright/clanker-translate/internal/adapters/gateway/openrouter"
	apiapp "github.com/quasarbright/clanker-translate/internal/api/app"
	"github.com/quasarbright/clanker-translate/internal/config"
	translatorusecase "github.com/quasarbright/clanker-translate/internal/usecase/translator"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if lvl, perr := logrus.ParseLevel(cfg.LogLevel); perr == nil {
		log.SetLevel(lvl)
	}

	db, err := dbsqlite.Init(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("open preference database")
	}
	settingsRepo := dbsqlite.NewSettingsRepo(db)
	modelCacheRepo := dbsqlite.NewModelCacheRepo(db)

	gw := openrouter.New(cfg.GatewayBaseURL, cfg.HTTPTimeout)
	transSvc := translatorusecase.New(gw, log)

	app := NewApp()
	translateAPI := apiapp.NewTranslateAPI(transSvc)
	modelsAPI := apiapp.NewModelsAPI(gw, modelCacheRepo, log)
	settingsAPI := apiapp.NewSettingsAPI(settingsRepo)

	err = wails.Run(&options.App{
		Title:  "Clanker Translate",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		Bind: []interface{}{
			app,
			translateAPI,
			modelsAPI,
			settingsAPI,
		},
	})
	if err != nil {
		log.WithError(err).Fatal("run app")
	}
}

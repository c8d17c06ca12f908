package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"socialnet/internal/common"
	"socialnet/internal/config"
	"socialnet/internal/dbmysql"
	"socialnet/internal/di"
	"socialnet/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		common.Log.Info(".env file not found, using system env variables")
	}

	cfg := config.Load()
	common.InitLogger(cfg.Logging)

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		common.Log.WithError(err).Fatal("failed to initialize database")
	}

	app, err := di.InitializeApplication(db, cfg)
	if err != nil {
		common.Log.WithError(err).Fatal("failed to wire application")
	}

	router := web.NewRouter(app.Handler, app.Tokens, cfg.Auth.CookieName)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	common.Log.WithField("addr", addr).Info("socialnet listening")
	if err := server.ListenAndServe(); err != nil {
		common.Log.WithError(err).Fatal("server stopped")
	}
}

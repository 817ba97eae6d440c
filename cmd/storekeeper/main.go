package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avolkovs/storekeeper/internal/buildinfo"
	"github.com/avolkovs/storekeeper/internal/client/api"
	"github.com/avolkovs/storekeeper/internal/client/cli"
	"github.com/avolkovs/storekeeper/internal/client/config"
	"github.com/avolkovs/storekeeper/internal/client/services"
	"github.com/avolkovs/storekeeper/internal/client/session"
	"github.com/avolkovs/storekeeper/internal/client/store"
	"github.com/avolkovs/storekeeper/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := store.InitDatabase(ctx, cfg.StateDBPath)
	if err != nil {
		log.Fatalf("error initializing state database: %v", err)
	}
	defer db.Close()

	sessionStore := store.NewSessionStore(db)
	sess := session.NewManager(sessionStore, logger)

	apiClient := api.New(api.Config{
		Timeout:        cfg.RequestTimeout,
		TokenSource:    sess.Token,
		OnUnauthorized: sess.HandleUnauthorized,
		Logger:         logger,
	})

	app := cli.NewApp(cli.Deps{
		Config:     cfg,
		Session:    sess,
		Auth:       services.NewAuthService(apiClient, cfg.AuthURL()),
		Users:      services.NewUserService(apiClient, cfg.UsersURL()),
		Products:   services.NewProductService(apiClient, cfg.ProductsURL()),
		Categories: services.NewCategoryService(apiClient, cfg.CategoryURL()),
		Logger:     logger,
	})

	app.Run(ctx)
}

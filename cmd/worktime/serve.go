package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/terraincognita07/worktime/internal/api"
	"github.com/terraincognita07/worktime/internal/config"
	"github.com/terraincognita07/worktime/internal/qrcode"
	"github.com/terraincognita07/worktime/internal/storage"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	Server config.Server        `embed:""`
	Store  config.ArtifactStore `embed:"" prefix:"store-"`
}

func (cmd *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	logger, err := globals.newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cmd.Server.Validate(); err != nil {
		return err
	}
	location := config.LoadLocation(cmd.Server.TZ, logger)

	database, closeDatabase, err := globals.openDatabase(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	store, err := storage.New(ctx, cmd.Store.Settings())
	if err != nil {
		return fmt.Errorf("artifact store init failed: %w", err)
	}

	handler, err := api.NewHandler(database, api.Options{
		SecretKey:     cmd.Server.SecretKey,
		CookieSecure:  cmd.Server.CookieSecure,
		SessionTTL:    cmd.Server.SessionTTL,
		Location:      location,
		SiteURL:       cmd.Server.SiteURL,
		QREncoder:     qrcode.NewEncoder(qrcode.DefaultSize),
		ArtifactStore: store,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, logger)

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("worktime listening",
		zap.String("addr", "0.0.0.0:"+cmd.Server.Port),
		zap.String("db_driver", globals.Database.Driver),
		zap.String("tz", location.String()),
		zap.String("qr_store", cmd.Store.Kind),
	)
	if err := app.Listen(":" + cmd.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
